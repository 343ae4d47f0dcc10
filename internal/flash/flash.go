// internal/flash/flash.go
package flash

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tamzrod/hubslots/internal/slot"
)

// DefaultRoot is the host directory that slot paths are resolved under.
// On the hub itself this is the real filesystem root.
const DefaultRoot = "/"

// New returns the hub filesystem rooted at root.
// An empty root means DefaultRoot.
func New(root string) (billy.Filesystem, error) {
	if root == "" {
		root = DefaultRoot
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("flash: root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("flash: root %q is not a directory", root)
	}

	return osfs.New(filepath.Clean(root)), nil
}

// NewMemory returns an empty in-memory hub filesystem.
func NewMemory() billy.Filesystem {
	return memfs.New()
}

// Seed writes program content for each slot into fs at its slot path.
// Only used to build fixtures; the hub software never writes slots.
func Seed(fs billy.Filesystem, programs map[slot.Slot][]byte) error {
	for s, data := range programs {
		if !s.Valid() {
			return fmt.Errorf("flash: seed slot %d: %w", int(s), slot.ErrInvalidSlot)
		}
		path := slot.Path(s)
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("flash: mkdirall %q: %w", path, err)
		}
		if err := util.WriteFile(fs, path, data, 0o644); err != nil {
			return fmt.Errorf("flash: write %q: %w", path, err)
		}
	}
	return nil
}
