// internal/slot/resolver.go
package slot

import (
	"errors"

	"github.com/go-git/go-billy/v5"
)

// Resolver turns slot indices into verified program paths.
type Resolver struct {
	fs billy.Filesystem
}

// NewResolver binds a resolver to the filesystem holding the flash tree.
func NewResolver(fs billy.Filesystem) (*Resolver, error) {
	if fs == nil {
		return nil, errors.New("slot: filesystem required")
	}
	return &Resolver{fs: fs}, nil
}

// Resolve validates s, then probes its program file with a single
// read-only open that is closed immediately.
//
// Range is checked before any I/O. A failed probe yields *UnavailableError.
func (r *Resolver) Resolve(s Slot) (string, error) {
	if !s.Valid() {
		return "", &InvalidSlotError{Slot: s}
	}

	path := Path(s)

	f, err := r.fs.Open(path)
	if err != nil {
		return "", &UnavailableError{Slot: s, Err: err}
	}
	_ = f.Close()

	return path, nil
}
