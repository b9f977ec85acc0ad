package service

import (
	"context"
	"fmt"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
)

// Finder lists records
type Finder[T any] interface {
	Find(ctx context.Context, params hook.Params) ([]T, error)
}

// Getter fetches one record by id
type Getter[T any] interface {
	Get(ctx context.Context, id string, params hook.Params) (T, error)
}

// Creator creates a record from data
type Creator[T any] interface {
	Create(ctx context.Context, data domain.Data, params hook.Params) (T, error)
}

// Patcher shallow-merges data onto an existing record
type Patcher[T any] interface {
	Patch(ctx context.Context, id string, data domain.Data, params hook.Params) (T, error)
}

// Remover deletes a record by id
type Remover[T any] interface {
	Remove(ctx context.Context, id string, params hook.Params) (T, error)
}

// CRUD is the full method set
type CRUD[T any] interface {
	Finder[T]
	Getter[T]
	Creator[T]
	Patcher[T]
	Remover[T]
}

// Service is the type-erased view of a registered service
type Service interface {
	Path() string
	Methods() []hook.Method
	Hooks(sets ...hook.Set)
}

// Hooked wraps a service implementation with the hook pipeline and event
// publication. impl may implement any subset of the capability interfaces;
// calling a missing method fails with MethodNotAllowed.
type Hooked[T any] struct {
	path  string
	impl  any
	hooks *hook.Registry
	bus   *EventBus
}

var _ Service = (*Hooked[domain.Message])(nil)

// NewHooked wraps impl as the service at path
func NewHooked[T any](path string, impl any, bus *EventBus) *Hooked[T] {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Hooked[T]{
		path:  path,
		impl:  impl,
		hooks: hook.NewRegistry(),
		bus:   bus,
	}
}

// Path returns the path the service is registered under
func (s *Hooked[T]) Path() string {
	return s.path
}

// Methods returns the methods the implementation supports
func (s *Hooked[T]) Methods() []hook.Method {
	var methods []hook.Method
	if _, ok := s.impl.(Finder[T]); ok {
		methods = append(methods, hook.MethodFind)
	}
	if _, ok := s.impl.(Getter[T]); ok {
		methods = append(methods, hook.MethodGet)
	}
	if _, ok := s.impl.(Creator[T]); ok {
		methods = append(methods, hook.MethodCreate)
	}
	if _, ok := s.impl.(Patcher[T]); ok {
		methods = append(methods, hook.MethodPatch)
	}
	if _, ok := s.impl.(Remover[T]); ok {
		methods = append(methods, hook.MethodRemove)
	}
	return methods
}

// Hooks registers hook sets; later registrations append
func (s *Hooked[T]) Hooks(sets ...hook.Set) {
	for _, set := range sets {
		s.hooks.Register(set)
	}
}

// On calls fn with the record carried by every eventType event of this service
func (s *Hooked[T]) On(eventType EventType, fn func(T)) {
	s.bus.On(s.path, eventType, func(ev Event) {
		if record, ok := ev.Payload.(T); ok {
			fn(record)
		}
	})
}

// Find lists records
func (s *Hooked[T]) Find(ctx context.Context, params hook.Params) ([]T, error) {
	impl, ok := s.impl.(Finder[T])
	if !ok {
		return nil, s.notAllowed(hook.MethodFind)
	}

	hc, err := s.hooks.Run(ctx, s.newContext(hook.MethodFind, "", nil, params),
		func(ctx context.Context, hc hook.Context) (any, error) {
			return impl.Find(ctx, hc.Params)
		}, expect[[]T]())
	if err != nil {
		return nil, err
	}
	return result[[]T](hc)
}

// Get fetches one record
func (s *Hooked[T]) Get(ctx context.Context, id string, params hook.Params) (T, error) {
	var zero T
	impl, ok := s.impl.(Getter[T])
	if !ok {
		return zero, s.notAllowed(hook.MethodGet)
	}

	hc, err := s.hooks.Run(ctx, s.newContext(hook.MethodGet, id, nil, params),
		func(ctx context.Context, hc hook.Context) (any, error) {
			return impl.Get(ctx, hc.ID, hc.Params)
		}, expect[T]())
	if err != nil {
		return zero, err
	}
	return result[T](hc)
}

// Create creates a record and publishes EventCreated
func (s *Hooked[T]) Create(ctx context.Context, data domain.Data, params hook.Params) (T, error) {
	var zero T
	impl, ok := s.impl.(Creator[T])
	if !ok {
		return zero, s.notAllowed(hook.MethodCreate)
	}

	hc, err := s.hooks.Run(ctx, s.newContext(hook.MethodCreate, "", data, params),
		func(ctx context.Context, hc hook.Context) (any, error) {
			return impl.Create(ctx, hc.Data, hc.Params)
		}, expect[T]())
	if err != nil {
		return zero, err
	}
	return s.publish(EventCreated, hc)
}

// Patch merges data onto a record and publishes EventPatched
func (s *Hooked[T]) Patch(ctx context.Context, id string, data domain.Data, params hook.Params) (T, error) {
	var zero T
	impl, ok := s.impl.(Patcher[T])
	if !ok {
		return zero, s.notAllowed(hook.MethodPatch)
	}

	hc, err := s.hooks.Run(ctx, s.newContext(hook.MethodPatch, id, data, params),
		func(ctx context.Context, hc hook.Context) (any, error) {
			return impl.Patch(ctx, hc.ID, hc.Data, hc.Params)
		}, expect[T]())
	if err != nil {
		return zero, err
	}
	return s.publish(EventPatched, hc)
}

// Remove deletes a record and publishes EventRemoved
func (s *Hooked[T]) Remove(ctx context.Context, id string, params hook.Params) (T, error) {
	var zero T
	impl, ok := s.impl.(Remover[T])
	if !ok {
		return zero, s.notAllowed(hook.MethodRemove)
	}

	hc, err := s.hooks.Run(ctx, s.newContext(hook.MethodRemove, id, nil, params),
		func(ctx context.Context, hc hook.Context) (any, error) {
			return impl.Remove(ctx, hc.ID, hc.Params)
		}, expect[T]())
	if err != nil {
		return zero, err
	}
	return s.publish(EventRemoved, hc)
}

func (s *Hooked[T]) newContext(method hook.Method, id string, data domain.Data, params hook.Params) hook.Context {
	return hook.Context{
		Path:   s.path,
		Method: method,
		ID:     id,
		Data:   data,
		Params: params,
	}
}

func (s *Hooked[T]) publish(eventType EventType, hc hook.Context) (T, error) {
	record, err := result[T](hc)
	if err != nil {
		return record, err
	}
	s.bus.Publish(Event{Type: eventType, Path: s.path, Payload: record})
	return record, nil
}

func (s *Hooked[T]) notAllowed(method hook.Method) error {
	return apperror.MethodNotAllowed("Method `%s` is not supported by service `%s`", method, s.path)
}

// expect fails the call inside the pipeline, so error hooks observe it, when
// the final result is not an R
func expect[R any]() hook.Func {
	return func(ctx context.Context, hc hook.Context) (hook.Context, error) {
		_, err := result[R](hc)
		return hc, err
	}
}

func result[R any](hc hook.Context) (R, error) {
	r, ok := hc.Result.(R)
	if !ok {
		var zero R
		return zero, apperror.General(fmt.Errorf("%s.%s: unexpected result type %T", hc.Path, hc.Method, hc.Result))
	}
	return r, nil
}
