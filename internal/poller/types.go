// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/hubslots/internal/scanner"
	"github.com/tamzrod/hubslots/internal/status"
)

// PollResult is a snapshot produced by one scan cycle.
type PollResult struct {
	At time.Time

	// Inspections holds one entry per slot, ascending.
	Inspections []scanner.Inspection

	// Registry is the set of qualifying slots.
	Registry scanner.Registry

	// Snapshot is the publishable form of Inspections.
	Snapshot status.Snapshot
}
