// internal/slot/errors.go
package slot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSlot means the slot index is outside [First, Last].
	// It is a caller bug and is never produced by I/O.
	ErrInvalidSlot = errors.New("slot: argument not in range [0-19]")

	// ErrSlotUnavailable means the slot address is valid but its program
	// file could not be opened.
	ErrSlotUnavailable = errors.New("slot: unavailable")
)

// InvalidSlotError carries the rejected index.
type InvalidSlotError struct {
	Slot Slot
}

func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("slot: argument %d not in range [%d-%d]", int(e.Slot), First, Last)
}

func (e *InvalidSlotError) Is(target error) bool {
	return target == ErrInvalidSlot
}

// UnavailableError reports a failed existence probe.
type UnavailableError struct {
	Slot Slot
	Err  error // underlying I/O error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("slot %d is empty: %v", int(e.Slot), e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

// Outcome is the explicit result kind of a Resolve call.
type Outcome uint8

const (
	OutcomeOK Outcome = iota
	OutcomeInvalidArgument
	OutcomeUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalidArgument:
		return "invalid_argument"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Classify maps an error returned by Resolve to its Outcome.
// Errors that did not come from Resolve are reported as unavailable.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidSlot):
		return OutcomeInvalidArgument
	default:
		return OutcomeUnavailable
	}
}
