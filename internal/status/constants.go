// internal/status/constants.go
package status

import "github.com/tamzrod/hubslots/internal/slot"

// Slot Inventory Block layout constants.
// These values define the published layout and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// BlockRegisters is the fixed number of holding registers in the block.
// Register N holds the state code of hub slot N.
const BlockRegisters = slot.Count

// BlockCoils is the fixed number of coils in the block.
// Coil N is set when hub slot N qualifies under the scan filter.
const BlockCoils = slot.Count

// ---- STATE CODES ----

// CodeEmpty means the slot program file cannot be opened.
const CodeEmpty uint16 = 0

// CodePresent means a program exists without a usable doc header.
const CodePresent uint16 = 1

// CodeDocumented means the program carries a doc header but did not pass the filter.
const CodeDocumented uint16 = 2

// CodeMatched means the program qualifies under the scan filter.
const CodeMatched uint16 = 3
