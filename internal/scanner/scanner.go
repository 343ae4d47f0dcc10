// internal/scanner/scanner.go
package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/tamzrod/hubslots/internal/decode"
	"github.com/tamzrod/hubslots/internal/slot"
)

// Scanner walks all hub slots looking for documented programs.
// Per-slot failures are outcomes, never errors.
type Scanner struct {
	fs  billy.Filesystem
	log zerolog.Logger
}

// New creates a scanner over fs. A zero logger discards output.
func New(fs billy.Filesystem, log zerolog.Logger) (*Scanner, error) {
	if fs == nil {
		return nil, errors.New("scanner: filesystem required")
	}
	return &Scanner{fs: fs, log: log}, nil
}

// Scan inspects slots 0..19 in order and returns those that qualify.
func (sc *Scanner) Scan(opts Options) Registry {
	var entries []Entry
	for _, in := range sc.InspectAll(opts) {
		if in.Qualified {
			entries = append(entries, Entry{Slot: in.Slot, Path: in.Path})
		}
	}
	return NewRegistry(entries)
}

// InspectAll returns one Inspection per slot, ascending.
func (sc *Scanner) InspectAll(opts Options) []Inspection {
	out := make([]Inspection, 0, slot.Count)
	for _, s := range slot.All() {
		out = append(out, sc.Inspect(s, opts))
	}
	return out
}

// Inspect reads at most two lines of the slot program:
// the header (must contain Marker) and the doc line (must be valid UTF-8).
func (sc *Scanner) Inspect(s slot.Slot, opts Options) Inspection {
	in := Inspection{
		Slot:  s,
		Path:  slot.Path(s),
		State: StateEmpty,
	}

	f, err := sc.fs.Open(in.Path)
	if err != nil {
		sc.log.Debug().Int("slot", int(s)).Err(err).Msg("slot skipped: open failed")
		return in
	}
	defer f.Close()

	in.State = StatePresent

	br := bufio.NewReader(f)

	header, err := readLine(br)
	if err != nil {
		sc.log.Debug().Int("slot", int(s)).Err(err).Msg("slot skipped: header read failed")
		return in
	}
	if !bytes.Contains(header, Marker) {
		sc.log.Debug().Int("slot", int(s)).Msg("slot skipped: no doc marker")
		return in
	}

	raw, err := readLine(br)
	if err != nil {
		sc.log.Debug().Int("slot", int(s)).Err(err).Msg("slot skipped: doc line read failed")
		return in
	}
	doc, ok := decode.Strict(raw)
	if !ok {
		sc.log.Debug().Int("slot", int(s)).Msg("slot skipped: doc line is not utf-8")
		return in
	}

	in.State = StateDocumented
	in.Doc = doc
	in.Qualified = matches(doc, opts)

	if !in.Qualified {
		sc.log.Debug().Int("slot", int(s)).Str("want", opts.MarkerWord).Msg("slot skipped: marker word mismatch")
	}
	return in
}

// matches applies the keyword filter to a decoded doc line.
// A doc line with no tokens never passes an enabled filter.
func matches(doc string, opts Options) bool {
	if !opts.CheckMarker {
		return true
	}
	word, ok := decode.FirstWord(doc)
	if !ok {
		return false
	}
	return word == opts.MarkerWord
}

// readLine returns one line including its trailing newline.
// End of file terminates the last line; an empty result at EOF is not an error.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return line, nil
}
