// internal/scanner/types.go
package scanner

import (
	"sort"

	"github.com/tamzrod/hubslots/internal/slot"
)

// Marker is the byte sequence a documented program carries in its header line.
var Marker = []byte("__doc__")

// Options selects which documented slots qualify.
type Options struct {
	// CheckMarker enables keyword filtering on the doc line.
	CheckMarker bool
	// MarkerWord must equal the first token of the doc line when CheckMarker is set.
	MarkerWord string
}

// State is what a single inspection learned about a slot.
type State uint8

const (
	StateEmpty      State = iota // program file cannot be opened
	StatePresent                 // file exists, no usable doc header
	StateDocumented              // header marker and a UTF-8 doc line
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePresent:
		return "present"
	case StateDocumented:
		return "documented"
	default:
		return "unknown"
	}
}

// Inspection is the raw per-slot result.
type Inspection struct {
	Slot  slot.Slot
	Path  string
	State State

	// Doc is the decoded line that follows the header (documented slots only).
	Doc string

	// Qualified means the slot belongs in the Registry for the given Options.
	Qualified bool
}

// Entry is one qualifying slot.
type Entry struct {
	Slot slot.Slot
	Path string
}

// Registry is an immutable, slot-ordered set of qualifying slots.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry from entries, ordered by slot.
// Duplicate slots keep the first entry.
func NewRegistry(entries []Entry) Registry {
	out := make([]Entry, 0, len(entries))
	seen := make(map[slot.Slot]bool, len(entries))
	for _, e := range entries {
		if seen[e.Slot] {
			continue
		}
		seen[e.Slot] = true
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return Registry{entries: out}
}

// Len returns the number of qualifying slots.
func (r Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in ascending slot order.
func (r Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Slots returns qualifying slots in ascending order.
func (r Registry) Slots() []slot.Slot {
	out := make([]slot.Slot, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Slot
	}
	return out
}

// Lookup returns the path for s if it qualified.
func (r Registry) Lookup(s slot.Slot) (string, bool) {
	for _, e := range r.entries {
		if e.Slot == s {
			return e.Path, true
		}
	}
	return "", false
}

// Map returns the registry as a plain slot → path map.
func (r Registry) Map() map[slot.Slot]string {
	out := make(map[slot.Slot]string, len(r.entries))
	for _, e := range r.entries {
		out[e.Slot] = e.Path
	}
	return out
}
