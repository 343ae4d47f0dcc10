// internal/program/reader.go
package program

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/tamzrod/hubslots/internal/decode"
	"github.com/tamzrod/hubslots/internal/slot"
)

// Policy controls what happens when a content line is not valid UTF-8.
type Policy string

const (
	// PolicyLenient drops malformed bytes and keeps going.
	PolicyLenient Policy = "lenient"
	// PolicyStopOnBinary ends the listing at the first malformed line.
	PolicyStopOnBinary Policy = "stop_on_binary"
)

// ParsePolicy validates a policy name. Empty means PolicyLenient.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStopOnBinary:
		return PolicyStopOnBinary, nil
	default:
		return "", fmt.Errorf("program: unknown read policy %q", name)
	}
}

// Reader lists the text content of slot programs.
type Reader struct {
	fs       billy.Filesystem
	resolver *slot.Resolver
	policy   Policy
	log      zerolog.Logger
}

// NewReader builds a reader over fs.
func NewReader(fs billy.Filesystem, policy Policy, log zerolog.Logger) (*Reader, error) {
	r, err := slot.NewResolver(fs)
	if err != nil {
		return nil, err
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if policy == "" {
		policy = PolicyLenient
	}
	return &Reader{fs: fs, resolver: r, policy: policy, log: log}, nil
}

// Lines resolves s, skips the file information line and calls fn with
// every following line, decoded and right-trimmed.
//
// Resolve errors are returned unchanged so callers can tell an invalid
// slot from an empty one.
func (r *Reader) Lines(s slot.Slot, fn func(line string)) error {
	path, err := r.resolver.Resolve(s)
	if err != nil {
		return err
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return &slot.UnavailableError{Slot: s, Err: err}
	}
	defer f.Close()

	br := bufio.NewReader(f)

	// file information line
	if _, err := br.ReadBytes('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("program: read %q: %w", path, err)
	}

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			text, ok := r.decodeLine(raw)
			if !ok {
				r.log.Debug().Int("slot", int(s)).Msg("listing stopped at binary line")
				return nil
			}
			fn(text)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("program: read %q: %w", path, err)
		}
	}
}

func (r *Reader) decodeLine(raw []byte) (string, bool) {
	switch r.policy {
	case PolicyStopOnBinary:
		text, ok := decode.Strict(raw)
		if !ok {
			return "", false
		}
		return strings.TrimRightFunc(text, unicode.IsSpace), true
	default:
		return strings.TrimRightFunc(decode.Text(raw), unicode.IsSpace), true
	}
}
