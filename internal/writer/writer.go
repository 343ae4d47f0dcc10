// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/hubslots/internal/poller"
	"github.com/tamzrod/hubslots/internal/status"
)

// endpointClient is the exact contract the writer uses.
type endpointClient interface {
	WriteCoils(unitID uint8, addr uint16, bits []bool) error
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// inventoryWriter publishes the slot inventory block.
// The first write, and the first write after any failure, re-asserts
// the full block. Otherwise only changed cells are written.
type inventoryWriter struct {
	plan Plan
	cli  endpointClient

	needFull bool
	last     status.Snapshot
}

// New builds the inventory writer for plan over cli.
func New(plan Plan, cli endpointClient) Writer {
	return &inventoryWriter{
		plan:     plan,
		cli:      cli,
		needFull: true,
	}
}

func (w *inventoryWriter) Write(res poller.PollResult) error {
	if w.cli == nil {
		return fmt.Errorf("writer: missing client for endpoint %s", w.plan.Endpoint)
	}

	s := res.Snapshot

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if w.needFull {
		if err := w.cli.WriteRegisters(w.plan.UnitID, w.plan.RegisterAddress, status.Encode(s)); err != nil {
			return fmt.Errorf("writer: full register block write failed: %w", err)
		}
		if err := w.cli.WriteCoils(w.plan.UnitID, w.plan.CoilAddress, status.EncodeCoils(s)); err != nil {
			return fmt.Errorf("writer: full coil block write failed: %w", err)
		}

		w.needFull = false
		w.last = s
		return nil
	}

	var errs []string

	// Registers: one write per changed slot
	for i := 0; i < status.BlockRegisters; i++ {
		if w.last.Codes[i] == s.Codes[i] {
			continue
		}
		addr := w.plan.RegisterAddress + uint16(i)
		if err := w.cli.WriteRegisters(w.plan.UnitID, addr, []uint16{s.Codes[i]}); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d code write failed ep=%s addr=%d: %v", i, w.plan.Endpoint, addr, err))
			continue
		}
		w.last.Codes[i] = s.Codes[i]
	}

	// Coils: the block is small, rewrite it whole on any change
	if w.last.Qualified != s.Qualified {
		if err := w.cli.WriteCoils(w.plan.UnitID, w.plan.CoilAddress, status.EncodeCoils(s)); err != nil {
			errs = append(errs, fmt.Sprintf("coil block write failed ep=%s addr=%d: %v", w.plan.Endpoint, w.plan.CoilAddress, err))
		} else {
			w.last.Qualified = s.Qualified
		}
	}

	if len(errs) > 0 {
		// Any partial failure: re-assert the full block on next success.
		w.needFull = true
		return errors.New("writer: " + strings.Join(errs, " | "))
	}

	return nil
}
