// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/hubslots/internal/scanner"
	"github.com/tamzrod/hubslots/internal/status"
)

// Inspector abstracts the slot scan the poller needs.
type Inspector interface {
	InspectAll(opts scanner.Options) []scanner.Inspection
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Options  scanner.Options
}

// Poller is a dumb, clock-driven scanner.
type Poller struct {
	cfg       Config
	inspector Inspector
	now       func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config, inspector Inspector) (*Poller, error) {
	if inspector == nil {
		return nil, errors.New("poller: inspector required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	return &Poller{cfg: cfg, inspector: inspector, now: time.Now}, nil
}

// PollOnce performs exactly one scan over all slots.
// It never fails: unreadable slots are reported as states.
func (p *Poller) PollOnce() PollResult {
	ins := p.inspector.InspectAll(p.cfg.Options)

	var entries []scanner.Entry
	for _, in := range ins {
		if in.Qualified {
			entries = append(entries, scanner.Entry{Slot: in.Slot, Path: in.Path})
		}
	}

	return PollResult{
		At:          p.now(),
		Inspections: ins,
		Registry:    scanner.NewRegistry(entries),
		Snapshot:    status.FromInspections(ins),
	}
}
