package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo/repository"
	pkgSupabase "ai-todo-backend/pkg/supabase"
)

// insertRow is the writable column set of the todos table. Generated
// columns (id, created_at, updated_at) are left to the database.
type insertRow struct {
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CreatedDate string         `json:"created_date,omitempty"`
	DueDate     *string        `json:"due_date,omitempty"`
	Priority    model.Priority `json:"priority"`
	Category    []string       `json:"category"`
	Completed   bool           `json:"completed"`
}

func (r *implRepository) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	row := insertRow{
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
	}

	var out []model.Todo
	if err := r.client.Insert(ctx, todosTable, row, &out); err != nil {
		r.l.Errorf(ctx, "todo repository: failed to create todo: %v", err)
		return model.Todo{}, err
	}
	if len(out) == 0 {
		return model.Todo{}, fmt.Errorf("todo repository: insert returned no representation")
	}
	return out[0], nil
}

func (r *implRepository) CreateTodosBatch(ctx context.Context, sc model.Scope, opts []repository.CreateTodoOptions) ([]model.Todo, error) {
	rows := make([]insertRow, 0, len(opts))
	for _, opt := range opts {
		rows = append(rows, insertRow{
			UserID:      sc.UserID,
			Title:       opt.Title,
			Description: opt.Description,
			DueDate:     opt.DueDate,
			Priority:    opt.Priority,
			Category:    opt.Category,
		})
	}

	var out []model.Todo
	if err := r.client.Insert(ctx, todosTable, rows, &out); err != nil {
		r.l.Errorf(ctx, "todo repository: failed to create %d todos: %v", len(rows), err)
		return nil, err
	}
	return out, nil
}

func (r *implRepository) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	q := url.Values{}
	q.Set("id", "eq."+id)
	q.Set("user_id", "eq."+sc.UserID)
	q.Set("limit", "1")

	var out []model.Todo
	if err := r.client.Select(ctx, todosTable, q, &out); err != nil {
		if pkgSupabase.NotFound(err) {
			return model.Todo{}, repository.ErrTodoNotFound
		}
		r.l.Errorf(ctx, "todo repository: failed to get todo %s: %v", id, err)
		return model.Todo{}, err
	}
	if len(out) == 0 {
		return model.Todo{}, repository.ErrTodoNotFound
	}
	return out[0], nil
}

func (r *implRepository) ListTodos(ctx context.Context, sc model.Scope, opt repository.ListTodosOptions) ([]model.Todo, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+sc.UserID)
	q.Set("order", "created_at.desc")

	if opt.Completed != nil {
		q.Set("completed", "eq."+strconv.FormatBool(*opt.Completed))
	}
	if opt.DueBefore != "" {
		q.Set("due_date", "lt."+opt.DueBefore)
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}
	q.Set("limit", strconv.Itoa(limit))
	if opt.Offset > 0 {
		q.Set("offset", strconv.Itoa(opt.Offset))
	}

	var out []model.Todo
	if err := r.client.Select(ctx, todosTable, q, &out); err != nil {
		r.l.Errorf(ctx, "todo repository: failed to list todos: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	patch := map[string]any{}
	if opt.Title != nil {
		patch["title"] = *opt.Title
	}
	if opt.Description != nil {
		patch["description"] = *opt.Description
	}
	if opt.DueDate != nil {
		patch["due_date"] = *opt.DueDate
	}
	if opt.Priority != nil {
		patch["priority"] = *opt.Priority
	}
	if opt.Category != nil {
		patch["category"] = opt.Category
	}
	if opt.Completed != nil {
		patch["completed"] = *opt.Completed
	}
	if len(patch) == 0 {
		return r.GetTodo(ctx, sc, id)
	}

	q := url.Values{}
	q.Set("id", "eq."+id)
	q.Set("user_id", "eq."+sc.UserID)

	var out []model.Todo
	if err := r.client.Update(ctx, todosTable, q, patch, &out); err != nil {
		if pkgSupabase.NotFound(err) {
			return model.Todo{}, repository.ErrTodoNotFound
		}
		r.l.Errorf(ctx, "todo repository: failed to update todo %s: %v", id, err)
		return model.Todo{}, err
	}
	if len(out) == 0 {
		return model.Todo{}, repository.ErrTodoNotFound
	}
	return out[0], nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	q.Set("user_id", "eq."+sc.UserID)

	if err := r.client.Delete(ctx, todosTable, q); err != nil {
		if pkgSupabase.NotFound(err) {
			return repository.ErrTodoNotFound
		}
		r.l.Errorf(ctx, "todo repository: failed to delete todo %s: %v", id, err)
		return err
	}
	return nil
}
