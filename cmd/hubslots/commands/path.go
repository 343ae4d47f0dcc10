package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/slot"
)

func newPathCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <slot>",
		Short: "Print the program path of a slot if it exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.setup(cmd)
			if err != nil {
				return err
			}

			s, err := parseSlot(args[0])
			if err != nil {
				return e.out.Error("Invalid slot", err)
			}

			r, err := slot.NewResolver(e.fs)
			if err != nil {
				return err
			}

			path, err := r.Resolve(s)
			if err != nil {
				return slotError(e, err)
			}

			e.out.Line(path)
			return nil
		},
	}
}

// parseSlot parses a slot argument. Range is left to the resolver
// so that out-of-range numbers report ErrInvalidSlot.
func parseSlot(arg string) (slot.Slot, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a slot number: %w", arg, slot.ErrInvalidSlot)
	}
	return slot.Slot(n), nil
}

func slotError(e *env, err error) error {
	var un *slot.UnavailableError
	switch {
	case errors.As(err, &un):
		return e.out.Error(fmt.Sprintf("Slot %d is empty", int(un.Slot)), err)
	case errors.Is(err, slot.ErrInvalidSlot):
		return e.out.Error("Invalid slot", err)
	default:
		return e.out.Error("Slot lookup failed", err)
	}
}
