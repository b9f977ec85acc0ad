package service

import (
	"context"
	"strconv"
	"strings"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
	"switchboard/internal/repository"
)

// MessageService provides the message operations over a repository
type MessageService struct {
	repo repository.MessageRepository
}

var _ CRUD[domain.Message] = (*MessageService)(nil)

// NewMessageService creates a new message service
func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Find returns every message in insertion order
func (s *MessageService) Find(ctx context.Context, params hook.Params) ([]domain.Message, error) {
	return s.repo.List(ctx)
}

// Get retrieves a single message by id
func (s *MessageService) Get(ctx context.Context, id string, params hook.Params) (domain.Message, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Message{}, err
	}
	return s.repo.FindByID(ctx, n)
}

// Create stores a new message
func (s *MessageService) Create(ctx context.Context, data domain.Data, params hook.Params) (domain.Message, error) {
	return s.repo.Insert(ctx, data)
}

// Patch merges data onto an existing message
func (s *MessageService) Patch(ctx context.Context, id string, data domain.Data, params hook.Params) (domain.Message, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Message{}, err
	}
	return s.repo.MergeInto(ctx, n, data)
}

// Remove deletes a message and returns it
func (s *MessageService) Remove(ctx context.Context, id string, params hook.Params) (domain.Message, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Message{}, err
	}
	return s.repo.RemoveByID(ctx, n)
}

// parseID reads the leading integer of a raw id: an optional sign followed by
// decimal digits, with anything after the digits ignored ("1.5" and "1abc"
// are 1). An id without leading digits can never match a stored message, so
// it is reported as not found.
func parseID(id string) (int, error) {
	s := strings.TrimSpace(id)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, idNotFound(id)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of range for int; no message can carry it
		return 0, idNotFound(id)
	}
	return n, nil
}

func idNotFound(id string) error {
	return apperror.NotFound("Message with id %s not found", id).
		WithData(map[string]any{"id": id})
}
