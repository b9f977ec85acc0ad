package cli

import (
	"github.com/spf13/cobra"

	"switchboard/internal/script"
)

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <script.yaml>",
		Short: "Run a YAML script of service calls",
		Long: `Run a YAML script of service calls against a fresh application.

Each step names an op (find, get, create, patch, remove) and optionally a
service (default messages), an id, data and params:

  steps:
    - op: create
      data: {text: First Message}
    - op: patch
      id: "1"
      data: {text: Edited}
    - op: get
      service: todos
      id: dishes

The outcome of every step is printed. Execution stops at the first failing
step and the command exits non-zero.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, rootOpts, args[0])
		},
	}
}

func runExec(cmd *cobra.Command, opts *RootOptions, path string) error {
	ctx := cmd.Context()

	sc, err := script.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid script", err)
	}

	s, err := openSession(ctx, cmd, opts)
	if err != nil {
		return err
	}

	outcomes, runErr := script.NewRunner(s.app).Run(ctx, sc)
	if err := s.print(cmd, outcomes); err != nil {
		return err
	}
	if runErr != nil {
		return WrapExitError(ExitFailure, "script failed", runErr)
	}

	s.logger.Debug().Int("steps", len(outcomes)).Msg("script completed")
	return nil
}
