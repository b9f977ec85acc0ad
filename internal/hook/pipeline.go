package hook

import (
	"context"

	"github.com/google/uuid"
)

// Executor performs the service method for a call
type Executor func(ctx context.Context, hc Context) (any, error)

// Run drives one call through the before, execute and after phases.
// finish hooks run after the registered after hooks; the caller uses them to
// check the final Context. On failure the error hooks run and the original
// error is returned along with the Context as it stood when the call failed.
func (r *Registry) Run(ctx context.Context, hc Context, exec Executor, finish ...Func) (Context, error) {
	if hc.CallID == "" {
		hc.CallID = NewCallID()
	}
	ident := identity{callID: hc.CallID, path: hc.Path, method: hc.Method}

	var err error

	// Before
	hc.Phase = PhaseBefore
	for _, h := range r.Before(hc.Method) {
		hc.Data = hc.Data.Clone()
		if hc, err = apply(ctx, h, hc, ident, PhaseBefore); err != nil {
			return r.fail(ctx, hc, ident, err)
		}
	}

	// Execute, unless a before hook already supplied the result
	if hc.Result == nil {
		result, err := exec(ctx, hc)
		if err != nil {
			return r.fail(ctx, hc, ident, err)
		}
		hc.Result = result
	}

	// After
	hc.Phase = PhaseAfter
	for _, h := range append(r.After(hc.Method), finish...) {
		if hc, err = apply(ctx, h, hc, ident, PhaseAfter); err != nil {
			return r.fail(ctx, hc, ident, err)
		}
	}

	return hc, nil
}

// NewCallID returns a time-ordered call identifier
func NewCallID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// identity is the part of a Context hooks are not allowed to change
type identity struct {
	callID string
	path   string
	method Method
}

func (id identity) restore(hc Context, phase Phase) Context {
	hc.CallID = id.callID
	hc.Path = id.path
	hc.Method = id.method
	hc.Phase = phase
	return hc
}

func apply(ctx context.Context, h Func, hc Context, ident identity, phase Phase) (Context, error) {
	next, err := h(ctx, hc)
	if err != nil {
		// Keep the input context: a failing hook's partial output is discarded
		return ident.restore(hc, phase), err
	}
	return ident.restore(next, phase), nil
}

func (r *Registry) fail(ctx context.Context, hc Context, ident identity, err error) (Context, error) {
	hc = ident.restore(hc, PhaseError)
	hc.Err = err
	for _, h := range r.Errors(hc.Method) {
		h(ctx, hc)
	}
	return hc, err
}
