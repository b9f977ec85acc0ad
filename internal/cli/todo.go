package cli

import (
	"github.com/spf13/cobra"
)

// NewTodoCommand creates the todo command.
func NewTodoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "todo <name>",
		Short: "Get a todo from the todos service",
		Example: `  switchboard todo dishes
  switchboard todo laundry --format yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, rootOpts, args[0])
		},
	}
}

func runTodo(cmd *cobra.Command, opts *RootOptions, name string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, opts)
	if err != nil {
		return err
	}

	todos, err := s.app.Todos()
	if err != nil {
		return err
	}

	todo, err := todos.Get(ctx, name, nil)
	if err != nil {
		return WrapExitError(ExitFailure, "get todo failed", err)
	}
	return s.print(cmd, todo)
}
