package commands

import (
	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/scanner"
)

func newScanCmd(g *globalFlags) *cobra.Command {
	var check string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List slots whose program carries a doc header",
		Long: `scan walks slots 00..19 and lists those whose header line carries
the __doc__ marker. With --check WORD only slots whose doc line starts
with WORD are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.setup(cmd)
			if err != nil {
				return err
			}

			opts := scanner.Options{
				CheckMarker: e.cfg.Scan.CheckMarker,
				MarkerWord:  e.cfg.Scan.MarkerWord,
			}
			if cmd.Flags().Changed("check") {
				opts.CheckMarker = true
				opts.MarkerWord = check
			}

			sc, err := scanner.New(e.fs, e.log)
			if err != nil {
				return err
			}

			found := 0
			for _, in := range sc.InspectAll(opts) {
				if in.Qualified {
					e.out.Found(int(in.Slot), in.Path)
					found++
					continue
				}
				if verbose {
					e.out.Skipped(int(in.Slot), in.State.String())
				}
			}

			if found == 0 {
				e.out.Info("no matching slots")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "only list slots whose doc line starts with this word")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also report skipped slots")

	return cmd
}
