package hook

import (
	"context"

	"switchboard/internal/domain"
)

// Method names a service method
type Method string

const (
	MethodFind   Method = "find"
	MethodGet    Method = "get"
	MethodCreate Method = "create"
	MethodPatch  Method = "patch"
	MethodRemove Method = "remove"

	// MethodAll registers a hook for every method
	MethodAll Method = "all"
)

// Methods lists the concrete service methods in declaration order
var Methods = []Method{MethodFind, MethodGet, MethodCreate, MethodPatch, MethodRemove}

// Phase identifies where in the pipeline a hook runs
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
	PhaseError  Phase = "error"
)

// Params carries caller-supplied call options (query, provider, user, ...)
type Params map[string]any

// Context is the envelope threaded through the pipeline for one call
type Context struct {
	// CallID uniquely identifies the invocation
	CallID string
	Path   string
	Method Method
	Phase  Phase

	// ID is the raw record id for get, patch and remove
	ID     string
	Data   domain.Data
	Params Params

	// Result is set once the service method (or a before hook) produced one
	Result any
	// Err is set in the error phase
	Err error
}

// Func is a before or after hook
type Func func(ctx context.Context, hc Context) (Context, error)

// ErrorFunc observes a failed call. It cannot change the outcome.
type ErrorFunc func(ctx context.Context, hc Context)

// Set groups hooks for registration on a service
type Set struct {
	Before map[Method][]Func
	After  map[Method][]Func
	Error  map[Method][]ErrorFunc
}

// Chain folds hooks into one that runs them in order, stopping at the first error
func Chain(hooks ...Func) Func {
	return func(ctx context.Context, hc Context) (Context, error) {
		var err error
		for _, h := range hooks {
			if hc, err = h(ctx, hc); err != nil {
				return hc, err
			}
		}
		return hc, nil
	}
}
