package commands

import (
	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/program"
	"github.com/tamzrod/hubslots/internal/slot"
)

func newCountCmd(g *globalFlags) *cobra.Command {
	var first, last int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count digit occurrences across slot programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.setup(cmd)
			if err != nil {
				return err
			}

			pol, err := program.ParsePolicy(e.cfg.Read.Policy)
			if err != nil {
				return e.out.Error("Invalid read policy", err)
			}

			r, err := program.NewReader(e.fs, pol, e.log)
			if err != nil {
				return err
			}

			counts, err := r.CountDigits(slot.Slot(first), slot.Slot(last))
			if err != nil {
				return slotError(e, err)
			}

			for d, n := range counts {
				e.out.Info("%d occurs %d times.", d, n)
			}
			e.out.Info("Total: %d", counts.Total())
			return nil
		},
	}

	cmd.Flags().IntVar(&first, "first", slot.First, "first slot (inclusive)")
	cmd.Flags().IntVar(&last, "last", slot.Last, "last slot (inclusive)")

	return cmd
}
