// internal/poller/builder.go
package poller

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	cfg "github.com/tamzrod/hubslots/internal/config"
	"github.com/tamzrod/hubslots/internal/scanner"
)

// Build constructs a Poller over the hub filesystem.
// Assumes config has already passed Validate and Normalize.
func Build(c *cfg.Config, fs billy.Filesystem, log zerolog.Logger) (*Poller, error) {
	sc, err := scanner.New(fs, log)
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			Interval: time.Duration(c.Scan.IntervalMs) * time.Millisecond,
			Options: scanner.Options{
				CheckMarker: c.Scan.CheckMarker,
				MarkerWord:  c.Scan.MarkerWord,
			},
		},
		sc,
	)
}
