package service

import (
	"sync"

	"github.com/rs/zerolog"
)

// EventType defines the type of event
type EventType string

const (
	EventCreated EventType = "created"
	EventPatched EventType = "patched"
	EventRemoved EventType = "removed"
)

// Event represents a state change published by a service
type Event struct {
	Type    EventType   `json:"type" yaml:"type"`
	Path    string      `json:"path" yaml:"path"`
	Payload interface{} `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Listener is invoked synchronously for every matching event
type Listener func(Event)

type listener struct {
	path      string
	eventType EventType
	fn        Listener
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
	listeners   []listener
	logger      zerolog.Logger
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
		logger:      zerolog.Nop(),
	}
}

// WithLogger sets the logger used to trace event delivery
func (eb *EventBus) WithLogger(logger zerolog.Logger) *EventBus {
	eb.logger = logger
	return eb
}

// Subscribe adds a channel subscriber to receive every event
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// On registers fn for events of eventType published by the service at path
func (eb *EventBus) On(path string, eventType EventType, fn Listener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.listeners = append(eb.listeners, listener{path: path, eventType: eventType, fn: fn})
}

// Publish delivers an event to matching listeners in registration order,
// then to channel subscribers
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	listeners := make([]listener, len(eb.listeners))
	copy(listeners, eb.listeners)
	subscribers := make([]chan<- Event, len(eb.subscribers))
	copy(subscribers, eb.subscribers)
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("path", event.Path).
		Str("event", string(event.Type)).
		Msg("publishing event")

	for _, l := range listeners {
		if l.path == event.Path && l.eventType == event.Type {
			l.fn(event)
		}
	}

	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
			eb.logger.Warn().
				Str("path", event.Path).
				Str("event", string(event.Type)).
				Msg("event subscriber is slow, dropping event")
		}
	}
}
