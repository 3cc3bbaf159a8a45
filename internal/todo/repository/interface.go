package repository

import (
	"context"

	"ai-todo-backend/internal/model"
)

// TodoRepository is the interface for todo data access operations. Every
// operation is scoped to one user; rows belonging to other users are never
// visible.
type TodoRepository interface {
	CreateTodo(ctx context.Context, sc model.Scope, opt CreateTodoOptions) (model.Todo, error)
	CreateTodosBatch(ctx context.Context, sc model.Scope, opts []CreateTodoOptions) ([]model.Todo, error)
	GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error)
	ListTodos(ctx context.Context, sc model.Scope, opt ListTodosOptions) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, sc model.Scope, id string, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, sc model.Scope, id string) error
}
