package hook

import (
	"sync"
)

// Registry holds the hooks registered on one service
type Registry struct {
	mu     sync.RWMutex
	before map[Method][]Func
	after  map[Method][]Func
	errors map[Method][]ErrorFunc
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		before: make(map[Method][]Func),
		after:  make(map[Method][]Func),
		errors: make(map[Method][]ErrorFunc),
	}
}

// Register appends every hook in set under its method key
func (r *Registry) Register(set Set) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for method, hooks := range set.Before {
		r.before[method] = append(r.before[method], hooks...)
	}
	for method, hooks := range set.After {
		r.after[method] = append(r.after[method], hooks...)
	}
	for method, hooks := range set.Error {
		r.errors[method] = append(r.errors[method], hooks...)
	}
}

// Before returns the before hooks that apply to method, All hooks first
func (r *Registry) Before(method Method) []Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collect(r.before, method)
}

// After returns the after hooks that apply to method, All hooks first
func (r *Registry) After(method Method) []Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collect(r.after, method)
}

// Errors returns the error hooks that apply to method, All hooks first
func (r *Registry) Errors(method Method) []ErrorFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collect(r.errors, method)
}

// collect returns a fresh slice so callers can run hooks without the lock
func collect[F any](m map[Method][]F, method Method) []F {
	out := make([]F, 0, len(m[MethodAll])+len(m[method]))
	out = append(out, m[MethodAll]...)
	if method != MethodAll {
		out = append(out, m[method]...)
	}
	return out
}
