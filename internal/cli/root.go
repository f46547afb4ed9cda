// Package cli implements the portfolio command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/logging"
)

// RootOptions holds global flags and the state every subcommand shares.
type RootOptions struct {
	LogLevel  string
	LogFormat string
	Driver    string
	DataPath  string
	Key       string

	// environ replaces the process environment when set.
	environ map[string]string

	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the portfolio CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

func newRootCommand(environ map[string]string) *cobra.Command {
	opts := &RootOptions{environ: environ}

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio project pages",
		Long: `Serves portfolio project detail pages backed by a key-value store.

Configuration is read from the environment (PORT, HOST, STORE_DRIVER, DATA_PATH,
STORE_KEY, LOG_LEVEL, ...); flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (json|console)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver (memory|file|sqlite|redis)")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", "", "data directory for the file driver")
	cmd.PersistentFlags().StringVar(&opts.Key, "key", "", "store key holding the project collection")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if o.environ != nil {
		cfg, err = config.LoadFrom(o.environ)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if changed(cmd, "log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if changed(cmd, "log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if changed(cmd, "driver") {
		cfg.Store.Driver = o.Driver
	}
	if changed(cmd, "data") {
		cfg.Store.DataPath = o.DataPath
	}
	if changed(cmd, "key") {
		cfg.Store.Key = o.Key
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	o.Config = cfg
	o.Logger = logger
	return nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
