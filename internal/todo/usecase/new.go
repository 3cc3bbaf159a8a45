package usecase

import (
	"time"

	"ai-todo-backend/pkg/gemini"
	pkgLog "ai-todo-backend/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm gemini.IGemini
	now func() time.Time
}

// New creates a new todo UseCase instance. The clock is threaded in
// explicitly so every segment of a batch shares one reference instant and
// tests can pin it; pass nil for the wall clock.
func New(l pkgLog.Logger, llm gemini.IGemini, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:   l,
		llm: llm,
		now: now,
	}
}
