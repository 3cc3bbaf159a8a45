// Package inmem is a process-local todo store used when no database is
// configured. Contents are lost on restart.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	todos map[string]model.Todo
	now   func() time.Time
}

// New creates a new in-memory todo repository.
func New() repository.TodoRepository {
	return &implRepository{
		todos: make(map[string]model.Todo),
		now:   time.Now,
	}
}

func (r *implRepository) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(sc, opt), nil
}

func (r *implRepository) CreateTodosBatch(ctx context.Context, sc model.Scope, opts []repository.CreateTodoOptions) ([]model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make([]model.Todo, 0, len(opts))
	for _, opt := range opts {
		created = append(created, r.create(sc, opt))
	}
	return created, nil
}

// create assumes the write lock is held.
func (r *implRepository) create(sc model.Scope, opt repository.CreateTodoOptions) model.Todo {
	now := r.now().UTC().Format(time.RFC3339)
	t := model.Todo{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		CreatedDate: now[:10],
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.todos[t.ID] = t
	return t
}

func (r *implRepository) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != sc.UserID {
		return model.Todo{}, repository.ErrTodoNotFound
	}
	return t, nil
}

func (r *implRepository) ListTodos(ctx context.Context, sc model.Scope, opt repository.ListTodosOptions) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Todo, 0)
	for _, t := range r.todos {
		if t.UserID != sc.UserID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.DueBefore != "" && (t.DueDate == nil || *t.DueDate >= opt.DueBefore) {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})

	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := opt.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != sc.UserID {
		return model.Todo{}, repository.ErrTodoNotFound
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Category != nil {
		t.Category = opt.Category
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	t.UpdatedAt = r.now().UTC().Format(time.RFC3339)

	r.todos[id] = t
	return t, nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok || t.UserID != sc.UserID {
		return repository.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}
