// Package service implements the services hosted by the application.
//
// # Services
//
// MessageService manages the in-memory message collection: find, get,
// create, patch and remove over a repository.MessageRepository.
//
// TodoService is a read-only stub exposing only get.
//
// # Capabilities
//
// Services are described by small generic interfaces (Finder, Getter,
// Creator, Patcher, Remover). A service implements whichever subset it
// supports; CRUD is the full set.
//
// # Hooks and Events
//
// Hooked wraps an implementation with a hook.Registry and an EventBus. Every
// call runs through the hook pipeline, and successful create, patch and
// remove calls publish created, patched and removed events carrying the
// resulting record. Listeners run synchronously on the calling goroutine.
package service
