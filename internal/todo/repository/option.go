package repository

import "ai-todo-backend/internal/model"

// CreateTodoOptions holds the parameters for creating a todo row.
type CreateTodoOptions struct {
	Title       string
	Description string
	DueDate     *string // RFC3339 timestamp, nil for no deadline
	Priority    model.Priority
	Category    []string
}

// ListTodosOptions holds the parameters for listing a user's todos.
type ListTodosOptions struct {
	Completed *bool  // nil lists both
	DueBefore string // RFC3339 upper bound on due_date (exclusive)
	Limit     int    // max number of results (default 100)
	Offset    int    // pagination offset
}

// UpdateTodoOptions holds the mutable fields of a todo row. Nil fields are
// left untouched.
type UpdateTodoOptions struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *model.Priority
	Category    []string
	Completed   *bool
}
