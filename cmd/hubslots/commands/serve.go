package commands

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/poller"
	"github.com/tamzrod/hubslots/internal/slot"
	"github.com/tamzrod/hubslots/internal/writer"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve <config.yaml>",
		Short: "Re-scan slots periodically and publish the inventory",
		Long: `serve re-scans all slots every scan.interval_ms and, when
publish.endpoint is set, writes the slot inventory to a Modbus TCP
endpoint: one holding register per slot with its state code and one
coil per slot set when the slot qualifies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.configPath = args[0]

			e, err := g.setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// --------------------
			// Build poller
			// --------------------

			p, err := poller.Build(e.cfg, e.fs, e.log)
			if err != nil {
				return e.out.Error("Poller build failed", err)
			}

			// --------------------
			// Build writer (optional)
			// --------------------

			var w writer.Writer
			if e.cfg.Publish.Enabled() {
				plan, err := writer.BuildPlan(e.cfg.Publish)
				if err != nil {
					return e.out.Error("Writer plan failed", err)
				}

				client, closeClient, err := writer.BuildEndpointClient(e.cfg.Publish)
				if err != nil {
					return e.out.Error("Publish endpoint unreachable", err)
				}
				defer closeClient()

				w = writer.New(plan, client)
			}

			e.log.Info().
				Str("root", e.cfg.Hub.Root).
				Int("interval_ms", e.cfg.Scan.IntervalMs).
				Bool("publish", w != nil).
				Msg("monitor started")

			monitor(ctx, p, w, e.log)

			e.log.Info().Msg("monitor stopped")
			return nil
		},
	}
}

// monitor runs the poller and forwards every result to w (if any)
// until ctx is done. Registry changes are logged.
func monitor(ctx context.Context, p *poller.Poller, w writer.Writer, log zerolog.Logger) {
	out := make(chan poller.PollResult)
	go p.Run(ctx, out)

	var last []slot.Slot
	first := true

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-out:
			slots := res.Registry.Slots()
			if first || !slices.Equal(slots, last) {
				log.Info().Ints("slots", toInts(slots)).Msg("qualifying slots")
				last = slots
				first = false
			}

			if w == nil {
				continue
			}
			if err := w.Write(res); err != nil {
				log.Warn().Err(err).Msg("inventory publish failed")
			}
		}
	}
}

func toInts(slots []slot.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = int(s)
	}
	return out
}
