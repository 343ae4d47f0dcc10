// internal/status/snapshot.go
package status

import "github.com/tamzrod/hubslots/internal/scanner"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Codes     [BlockRegisters]uint16
	Qualified [BlockCoils]bool
}

// FromInspections builds a snapshot from one full scan pass.
// Inspections for slots outside the block are ignored.
func FromInspections(ins []scanner.Inspection) Snapshot {
	var s Snapshot
	for _, in := range ins {
		i := int(in.Slot)
		if i < 0 || i >= BlockRegisters {
			continue
		}
		s.Codes[i] = code(in)
		s.Qualified[i] = in.Qualified
	}
	return s
}

func code(in scanner.Inspection) uint16 {
	switch {
	case in.Qualified:
		return CodeMatched
	case in.State == scanner.StateDocumented:
		return CodeDocumented
	case in.State == scanner.StatePresent:
		return CodePresent
	default:
		return CodeEmpty
	}
}
