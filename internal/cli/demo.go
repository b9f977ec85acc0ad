package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"switchboard/internal/domain"
	"switchboard/internal/service"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create two messages, remove the second and list the rest",
		Long: `Create two messages, remove the second and list the rest.

Created and removed events are logged as they happen; the final listing is
printed in the selected output format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, rootOpts)
		},
	}
}

func runDemo(cmd *cobra.Command, opts *RootOptions) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, opts)
	if err != nil {
		return err
	}

	messages, err := s.app.Messages()
	if err != nil {
		return err
	}

	messages.On(service.EventCreated, func(m domain.Message) {
		s.logger.Info().Int("id", m.ID).Str("text", m.Text).Msg("Created a new message")
	})
	messages.On(service.EventRemoved, func(m domain.Message) {
		s.logger.Info().Int("id", m.ID).Str("text", m.Text).Msg("Deleted message")
	})

	if _, err := messages.Create(ctx, domain.Data{domain.FieldText: "First Message"}, nil); err != nil {
		return WrapExitError(ExitFailure, "create failed", err)
	}
	last, err := messages.Create(ctx, domain.Data{domain.FieldText: "Second message"}, nil)
	if err != nil {
		return WrapExitError(ExitFailure, "create failed", err)
	}
	if _, err := messages.Remove(ctx, strconv.Itoa(last.ID), nil); err != nil {
		return WrapExitError(ExitFailure, "remove failed", err)
	}

	list, err := messages.Find(ctx, nil)
	if err != nil {
		return WrapExitError(ExitFailure, "find failed", err)
	}
	return s.print(cmd, list)
}
