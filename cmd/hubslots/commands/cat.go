package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/program"
	"github.com/tamzrod/hubslots/internal/slot"
)

func newCatCmd(g *globalFlags) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "cat [slot]",
		Short: "Print the text content of a slot program",
		Long: `cat skips the file information line and prints every following
line of the slot program as text. Without an argument the configured
default slot (hub.slot) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.setup(cmd)
			if err != nil {
				return err
			}

			s := slot.Slot(e.cfg.Hub.Slot)
			if len(args) == 1 {
				if s, err = parseSlot(args[0]); err != nil {
					return e.out.Error("Invalid slot", err)
				}
			}

			if !cmd.Flags().Changed("policy") {
				policy = e.cfg.Read.Policy
			}
			pol, err := program.ParsePolicy(policy)
			if err != nil {
				return e.out.Error("Invalid read policy", err)
			}

			r, err := program.NewReader(e.fs, pol, e.log)
			if err != nil {
				return err
			}

			err = r.Lines(s, e.out.Line)
			if errors.Is(err, slot.ErrSlotUnavailable) {
				// An empty slot is an ordinary outcome for a reader.
				e.out.Skipped(int(s), "slot is empty")
				return nil
			}
			if err != nil {
				return slotError(e, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "binary line handling: lenient | stop_on_binary")

	return cmd
}
