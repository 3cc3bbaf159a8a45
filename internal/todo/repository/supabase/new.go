package supabase

import (
	"ai-todo-backend/internal/todo/repository"
	pkgLog "ai-todo-backend/pkg/log"
	pkgSupabase "ai-todo-backend/pkg/supabase"
)

const todosTable = "todos"

type implRepository struct {
	client *pkgSupabase.Client
	l      pkgLog.Logger
}

// New creates a new Supabase-backed todo repository.
func New(client *pkgSupabase.Client, l pkgLog.Logger) repository.TodoRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
