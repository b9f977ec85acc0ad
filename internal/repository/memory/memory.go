package memory

import (
	"context"
	"sync"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/repository"
)

var _ repository.MessageRepository = (*Repository)(nil)

// Repository implements repository.MessageRepository in memory
type Repository struct {
	mu       sync.RWMutex
	messages []domain.Message
	nextID   int
}

// New creates an empty repository
func New() *Repository {
	return &Repository{
		messages: make([]domain.Message, 0),
	}
}

// Insert assigns the next id, merges data and appends the message
func (r *Repository) Insert(ctx context.Context, data domain.Data) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := domain.Message{ID: r.nextID + 1}
	if err := msg.Apply(data); err != nil {
		return domain.Message{}, apperror.Wrap(apperror.KindBadRequest, err, "invalid message data: %v", err)
	}

	// Only consume the id once the message is known to be valid
	r.nextID = msg.ID
	r.messages = append(r.messages, msg)

	return msg.Clone(), nil
}

// FindByID returns the message with id
func (r *Repository) FindByID(ctx context.Context, id int) (domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Message{}, notFound(id)
	}
	return r.messages[i].Clone(), nil
}

// List returns every message in insertion order
func (r *Repository) List(ctx context.Context) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Message, 0, len(r.messages))
	for _, msg := range r.messages {
		out = append(out, msg.Clone())
	}
	return out, nil
}

// RemoveByID deletes the message with id, preserving the order of the rest
func (r *Repository) RemoveByID(ctx context.Context, id int) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Message{}, notFound(id)
	}

	removed := r.messages[i]
	r.messages = append(r.messages[:i], r.messages[i+1:]...)

	return removed, nil
}

// MergeInto shallow-merges patch onto the stored message in place
func (r *Repository) MergeInto(ctx context.Context, id int, patch domain.Data) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Message{}, notFound(id)
	}

	if err := r.messages[i].Apply(patch); err != nil {
		return domain.Message{}, apperror.Wrap(apperror.KindBadRequest, err, "invalid message data: %v", err)
	}

	return r.messages[i].Clone(), nil
}

// indexOf does a linear scan; caller must hold the lock
func (r *Repository) indexOf(id int) int {
	for i := range r.messages {
		if r.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) *apperror.Error {
	return apperror.NotFound("Message with id %d not found", id).
		WithData(map[string]any{"id": id})
}
