package repository

import (
	"context"

	"switchboard/internal/domain"
)

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Read operations
	List(ctx context.Context) ([]domain.Message, error)
	FindByID(ctx context.Context, id int) (domain.Message, error)

	// Write operations
	Insert(ctx context.Context, data domain.Data) (domain.Message, error)
	MergeInto(ctx context.Context, id int, patch domain.Data) (domain.Message, error)
	RemoveByID(ctx context.Context, id int) (domain.Message, error)
}
