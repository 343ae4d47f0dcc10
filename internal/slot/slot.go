// internal/slot/slot.go
package slot

import "fmt"

// ---- SLOT RANGE ----

// First is the lowest valid slot index.
const First = 0

// Last is the highest valid slot index (inclusive).
const Last = 19

// Count is the fixed number of firmware slots on the hub.
const Count = Last - First + 1

// pathTemplate is the firmware naming convention for slot programs.
// Slot is zero-padded to two digits.
const pathTemplate = "/flash/program/%02d/program.mpy"

// Slot identifies one fixed firmware storage location.
type Slot int

// Valid reports whether s lies in [First, Last].
func (s Slot) Valid() bool {
	return s >= First && s <= Last
}

// Path returns the storage path for s.
// Defined syntactically for any valid slot; existence is not checked.
func Path(s Slot) string {
	return fmt.Sprintf(pathTemplate, int(s))
}

// All returns every valid slot in ascending order.
func All() []Slot {
	out := make([]Slot, 0, Count)
	for s := Slot(First); s <= Last; s++ {
		out = append(out, s)
	}
	return out
}
