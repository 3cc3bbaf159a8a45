package http

import (
	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/repository"
	pkgLog "ai-todo-backend/pkg/log"
)

type handler struct {
	l    pkgLog.Logger
	uc   todo.UseCase
	repo repository.TodoRepository
}

// New creates a new HTTP handler for the todo domain.
func New(l pkgLog.Logger, uc todo.UseCase, repo repository.TodoRepository) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		repo: repo,
	}
}
