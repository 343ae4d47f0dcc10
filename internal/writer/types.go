// internal/writer/types.go
package writer

import "github.com/tamzrod/hubslots/internal/poller"

// Plan is the fully-built publish plan for the slot inventory.
type Plan struct {
	Endpoint        string
	UnitID          uint8
	CoilAddress     uint16 // first of status.BlockCoils coils
	RegisterAddress uint16 // first of status.BlockRegisters holding registers
}

// Writer publishes poll results into a target.
type Writer interface {
	Write(res poller.PollResult) error
}
