package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"switchboard/internal/config"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
	"switchboard/internal/middleware"
	"switchboard/internal/repository/memory"
	"switchboard/internal/service"
)

// Options tune Build
type Options struct {
	// Clock stamps createdAt and updatedAt. Nil means the wall clock.
	Clock middleware.Clock
}

// Build mounts the messages and todos services, registers the hooks the
// config enables and creates the seed messages
func Build(ctx context.Context, cfg *config.Config, logger zerolog.Logger, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	a := New(logger)

	messages, err := Mount[domain.Message](a, PathMessages, service.NewMessageService(memory.New()))
	if err != nil {
		return nil, err
	}
	if _, err := Mount[domain.Todo](a, PathTodos, service.TodoService{}); err != nil {
		return nil, err
	}

	messages.Hooks(MessageHooks(cfg.Hooks, opts.Clock))
	if cfg.Hooks.LogCalls {
		messages.Hooks(middleware.Logging(logger))
	}

	for _, text := range cfg.Seed {
		if _, err := messages.Create(ctx, domain.Data{domain.FieldText: text}, nil); err != nil {
			return nil, fmt.Errorf("seed message %q: %w", text, err)
		}
	}

	logger.Debug().
		Strs("services", a.Paths()).
		Int("seeded", len(cfg.Seed)).
		Msg("application ready")

	return a, nil
}

// MessageHooks returns the before hooks of the messages service: validation
// and createdAt stamping on create, updatedAt stamping on patch
func MessageHooks(cfg config.HooksConfig, clock middleware.Clock) hook.Set {
	stamp := middleware.SetTimestamp
	if clock != nil {
		stamp = func(field string) hook.Func {
			return middleware.SetTimestampWith(field, clock)
		}
	}

	var create, patch []hook.Func
	if cfg.Validate {
		create = append(create, middleware.Validate)
	}
	if cfg.Timestamps {
		create = append(create, stamp(domain.FieldCreatedAt))
		patch = append(patch, stamp(domain.FieldUpdatedAt))
	}

	return hook.Set{
		Before: map[hook.Method][]hook.Func{
			hook.MethodCreate: {hook.Chain(create...)},
			hook.MethodPatch:  {hook.Chain(patch...)},
		},
	}
}
