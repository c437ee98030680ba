package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/handiism/game-manager/internal/app"
	"github.com/handiism/game-manager/internal/config"
	"github.com/handiism/game-manager/internal/logging"
	"github.com/handiism/game-manager/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is reported by --version.
var Version = "dev"

// cli carries flags and the objects built from them for one run.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	dataFile   string
	dataFormat string
	logLevel   string
	format     string

	settings *config.Settings
	output   Format
	logger   zerolog.Logger
	closeLog func() error
	store    *store.Store
}

// Execute runs gamecat with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{
		stdout:   stdout,
		stderr:   stderr,
		logger:   zerolog.Nop(),
		closeLog: func() error { return nil },
	}
	defer func() {
		_ = c.closeLog()
	}()

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		c.logger.Error().Err(err).Msg("command failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gamecat",
		Short: "Keep a catalog of games with their genre and price",
		Long: `gamecat keeps a small catalog of games in a local file.

Run it without arguments for the interactive menu, or use a subcommand.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.setup,
		RunE:              c.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: ./gamecat.yaml or the user config dir)")
	flags.StringVarP(&c.dataFile, "file", "f", "", "catalog file (overrides config)")
	flags.StringVar(&c.dataFormat, "data-format", "", "catalog document format: xml, json or yaml (default: from file extension)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVarP(&c.format, "format", "o", "table", "output format for read commands: table, json or yaml")

	root.AddCommand(
		c.initCommand(),
		c.addCommand(),
		c.removeCommand(),
		c.listCommand(),
		c.showCommand(),
		c.cheapestCommand(),
		c.mostExpensiveCommand(),
		c.exportCommand(),
		c.configCommand(),
	)
	return root
}

// setup loads settings, applies flag overrides and opens the log and the
// catalog store.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	output, err := ParseFormat(c.format)
	if err != nil {
		return err
	}
	c.output = output

	settings, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataFile != "" {
		settings.DataFile = c.dataFile
	}
	if c.dataFormat != "" {
		settings.Format = c.dataFormat
	}
	if c.logLevel != "" {
		settings.Log.Level = c.logLevel
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	c.settings = settings

	logCfg := settings.Log
	logCfg.Output = settings.LogOutput()
	logger, closeLog, err := logging.New(&logCfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	c.logger = logger.With().Str("command", cmd.Name()).Logger()
	c.closeLog = closeLog

	opts := []store.Option{store.WithLogger(c.logger)}
	if settings.Format != "" {
		codec, err := store.CodecByName(settings.Format)
		if err != nil {
			return err
		}
		opts = append(opts, store.WithCodec(codec))
	}
	c.store = store.New(settings.DataFile, opts...)

	cmd.SetContext(logging.WithLogger(cmd.Context(), c.logger))
	return nil
}

func (c *cli) service(notifier app.Notifier) *app.Service {
	return app.NewService(c.store, notifier, c.logger)
}

// report prints the message of a result. Only storage failures are errors.
func (c *cli) report(res app.Result) error {
	if res.Outcome == app.OutcomeStorageFailure {
		return res.Err
	}
	fmt.Fprintln(c.stdout, res.Message)
	return nil
}
