// Package app holds the application object: an explicit registry mapping
// service paths to hooked services, sharing one event bus and logger.
package app

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
	"switchboard/internal/service"
)

const (
	PathMessages = "messages"
	PathTodos    = "todos"
)

// App is the registry of services mounted by path
type App struct {
	mu       sync.RWMutex
	services map[string]service.Service
	bus      *service.EventBus
	logger   zerolog.Logger
}

// New creates an empty application
func New(logger zerolog.Logger) *App {
	return &App{
		services: make(map[string]service.Service),
		bus:      service.NewEventBus().WithLogger(logger),
		logger:   logger,
	}
}

// Logger returns the application logger
func (a *App) Logger() zerolog.Logger {
	return a.logger
}

// Mount wraps impl with the hook pipeline and registers it under path.
// Mounting the same path twice is an error.
func Mount[T any](a *App, path string, impl any) (*service.Hooked[T], error) {
	svc := service.NewHooked[T](path, impl, a.bus)
	if err := a.use(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *App) use(svc service.Service) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	path := svc.Path()
	if path == "" {
		return fmt.Errorf("service path must not be empty")
	}
	if _, exists := a.services[path]; exists {
		return fmt.Errorf("service %s already registered", path)
	}

	a.services[path] = svc
	a.logger.Debug().
		Str("path", path).
		Interface("methods", svc.Methods()).
		Msg("registered service")

	return nil
}

// Service returns the service registered at path
func (a *App) Service(path string) (service.Service, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	svc, ok := a.services[path]
	if !ok {
		return nil, apperror.NotFound("Service `%s` is not registered", path)
	}
	return svc, nil
}

// Lookup returns the service at path as a typed hooked service
func Lookup[T any](a *App, path string) (*service.Hooked[T], error) {
	svc, err := a.Service(path)
	if err != nil {
		return nil, err
	}

	typed, ok := svc.(*service.Hooked[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("service %s does not serve %T", path, zero)
	}
	return typed, nil
}

// Paths lists the registered service paths in lexical order
func (a *App) Paths() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	paths := make([]string, 0, len(a.services))
	for path := range a.services {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Hooks registers hook sets on the service at path
func (a *App) Hooks(path string, sets ...hook.Set) error {
	svc, err := a.Service(path)
	if err != nil {
		return err
	}
	svc.Hooks(sets...)
	return nil
}

// On subscribes fn to eventType events of the service at path
func (a *App) On(path string, eventType service.EventType, fn service.Listener) {
	a.bus.On(path, eventType, fn)
}

// Messages returns the messages service
func (a *App) Messages() (*service.Hooked[domain.Message], error) {
	return Lookup[domain.Message](a, PathMessages)
}

// Todos returns the todos service
func (a *App) Todos() (*service.Hooked[domain.Todo], error) {
	return Lookup[domain.Todo](a, PathTodos)
}
