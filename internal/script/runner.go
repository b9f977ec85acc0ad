package script

import (
	"context"
	"fmt"

	"switchboard/internal/app"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
	"switchboard/internal/service"
)

// Outcome is the result of one executed step
type Outcome struct {
	Step    int         `json:"step" yaml:"step"`
	Op      hook.Method `json:"op" yaml:"op"`
	Service string      `json:"service" yaml:"service"`
	Result  any         `json:"result" yaml:"result"`
}

// StepError reports the step a script stopped at
type StepError struct {
	Step    int
	Op      hook.Method
	Service string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s %s): %v", e.Step, e.Service, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes scripts against an application
type Runner struct {
	app *app.App
}

// NewRunner creates a runner for a
func NewRunner(a *app.App) *Runner {
	return &Runner{app: a}
}

// Run executes the steps in order and stops at the first failure. The
// outcomes of the steps that succeeded are returned alongside a *StepError.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Outcome, error) {
	logger := r.app.Logger()
	outcomes := make([]Outcome, 0, len(s.Steps))

	for i, step := range s.Steps {
		path := step.Service
		if path == "" {
			path = app.PathMessages
		}

		result, err := r.dispatch(ctx, path, step)
		if err != nil {
			return outcomes, &StepError{Step: i + 1, Op: step.Op, Service: path, Err: err}
		}

		logger.Debug().
			Int("step", i+1).
			Str("path", path).
			Str("op", string(step.Op)).
			Msg("step completed")

		outcomes = append(outcomes, Outcome{Step: i + 1, Op: step.Op, Service: path, Result: result})
	}

	return outcomes, nil
}

func (r *Runner) dispatch(ctx context.Context, path string, step Step) (any, error) {
	svc, err := r.app.Service(path)
	if err != nil {
		return nil, err
	}

	switch typed := svc.(type) {
	case *service.Hooked[domain.Message]:
		return call(ctx, typed, step)
	case *service.Hooked[domain.Todo]:
		return call(ctx, typed, step)
	default:
		return nil, fmt.Errorf("service %s cannot be scripted", path)
	}
}

func call[T any](ctx context.Context, svc *service.Hooked[T], step Step) (any, error) {
	var (
		result any
		err    error
	)

	switch step.Op {
	case hook.MethodFind:
		result, err = svc.Find(ctx, step.Params)
	case hook.MethodGet:
		result, err = svc.Get(ctx, step.ID, step.Params)
	case hook.MethodCreate:
		result, err = svc.Create(ctx, step.Data, step.Params)
	case hook.MethodPatch:
		result, err = svc.Patch(ctx, step.ID, step.Data, step.Params)
	case hook.MethodRemove:
		result, err = svc.Remove(ctx, step.ID, step.Params)
	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}
