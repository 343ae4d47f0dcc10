// internal/status/encode.go
package status

// Encode converts a Snapshot into the full register block.
// Layout is locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, BlockRegisters)
	copy(regs, s.Codes[:])
	return regs
}

// EncodeCoils converts a Snapshot into the full coil block.
func EncodeCoils(s Snapshot) []bool {
	bits := make([]bool, BlockCoils)
	copy(bits, s.Qualified[:])
	return bits
}
