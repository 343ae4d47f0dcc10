package commands

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tamzrod/hubslots/internal/config"
	"github.com/tamzrod/hubslots/internal/flash"
	"github.com/tamzrod/hubslots/internal/logging"
	"github.com/tamzrod/hubslots/internal/printer"
	"github.com/tamzrod/hubslots/internal/slot"
)

const appName = "hubslots"

var versionString = "dev"

// openFS opens the hub filesystem. Tests swap it for an in-memory tree.
var openFS = flash.New

// newLogger builds the command logger. Tests swap it for a silent one.
var newLogger = func() zerolog.Logger { return logging.Init(appName) }

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	root       string
}

// env is what a subcommand needs after flag parsing.
type env struct {
	cfg *config.Config
	fs  billy.Filesystem
	log zerolog.Logger
	out *printer.Printer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Inspect program slots on a hub's flash storage",
		Long: `hubslots finds, validates and reads the compiled programs stored in
the 20 firmware slots of a hub (/flash/program/NN/program.mpy).

It never writes to slot storage.`,
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&g.root, "root", "", "host directory slot paths resolve under (default \"/\")")

	root.AddCommand(
		newPathCmd(g),
		newScanCmd(g),
		newCatCmd(g),
		newCountCmd(g),
		newServeCmd(g),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// ExitCode maps a command error to a process exit status.
// Invalid slot arguments are usage errors (2); everything else is 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, slot.ErrInvalidSlot):
		return 2
	default:
		return 1
	}
}

// setup loads config (file or defaults), applies flag overrides and
// opens the hub filesystem.
func (g *globalFlags) setup(cmd *cobra.Command) (*env, error) {
	out := &printer.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return nil, out.Error("Configuration error", err)
	}
	if g.root != "" {
		cfg.Hub.Root = g.root
	}

	fs, err := openFS(cfg.Hub.Root)
	if err != nil {
		return nil, out.Error("Cannot open hub storage", err)
	}

	return &env{cfg: cfg, fs: fs, log: newLogger(), out: out}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}
