// Package cli implements the switchboard command line.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"switchboard/internal/app"
	"switchboard/internal/codec"
	"switchboard/internal/config"
	"switchboard/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "yaml"; empty means the config's output.format
	Verbose    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "yaml"}

// NewRootCommand creates the root command for the switchboard CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "switchboard",
		Short: "switchboard - hooked in-memory services",
		Long: `An in-process service registry. The messages service supports
find, get, create, patch and remove behind before, after and error hooks;
the todos service answers get only.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: search standard locations)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewTodoCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// session is what a command works with once config is resolved
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
	app    *app.App
	output codec.Encoder
}

func openSession(ctx context.Context, cmd *cobra.Command, opts *RootOptions) (*session, error) {
	cfg, path, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New().
		WithWriter(cmd.ErrOrStderr()).
		WithLevel(level).
		WithFormat(cfg.Log.Format).
		Make()

	logger.Debug().
		Str("path", path).
		Str("summary", cfg.Summary()).
		Msg("loaded config")

	format := opts.Format
	if format == "" {
		format = cfg.Output.Format
	}
	output, err := codec.ForFormat(format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid output format", err)
	}

	a, err := app.Build(ctx, cfg, logger, app.Options{})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build application", err)
	}

	return &session{cfg: cfg, logger: logger, app: a, output: output}, nil
}

func (s *session) print(cmd *cobra.Command, v any) error {
	return s.output.Encode(cmd.OutOrStdout(), v)
}
