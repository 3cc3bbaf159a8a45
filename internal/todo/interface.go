package todo

import (
	"context"

	"ai-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// Parse turns free-form user text into one or more validated task
	// drafts. Multi-task input is fanned out concurrently per segment.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Analyze summarizes a todo collection for the given period.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (model.Analysis, error)
}
