package service

import (
	"context"

	"switchboard/internal/domain"
	"switchboard/internal/hook"
)

// TodoService is a read-only stub that derives a todo from its name
type TodoService struct{}

var _ Getter[domain.Todo] = TodoService{}

// Get returns the todo called name
func (TodoService) Get(ctx context.Context, name string, params hook.Params) (domain.Todo, error) {
	return domain.NewTodo(name), nil
}
