package http

import (
	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/repository"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text"`
}

func (r parseReq) toInput() todo.ParseInput {
	return todo.ParseInput{Text: r.Text}
}

// ---

type analyzeReq struct {
	Todos  []model.Todo `json:"todos"`
	Period string       `json:"period"`
}

func (r analyzeReq) toInput() todo.AnalyzeInput {
	period := model.AnalysisPeriod(r.Period)
	if r.Period == "" {
		period = model.PeriodToday
	}
	return todo.AnalyzeInput{
		Todos:  r.Todos,
		Period: period,
	}
}

// ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=1000"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    []string `json:"category"`
}

func (r createReq) toOptions() repository.CreateTodoOptions {
	priority := model.Priority(r.Priority)
	if !priority.Valid() {
		priority = model.PriorityMedium
	}
	category := r.Category
	if len(category) == 0 {
		category = []string{model.DefaultCategory}
	}
	return repository.CreateTodoOptions{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    priority,
		Category:    category,
	}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	DueBefore string `form:"due_before"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toOptions() repository.ListTodosOptions {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return repository.ListTodosOptions{
		Completed: r.Completed,
		DueBefore: r.DueBefore,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

type updateReq struct {
	Title       *string  `json:"title"       binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	DueDate     *string  `json:"due_date"`
	Priority    *string  `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    []string `json:"category"`
	Completed   *bool    `json:"completed"`
}

func (r updateReq) toOptions() repository.UpdateTodoOptions {
	opt := repository.UpdateTodoOptions{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Category:    r.Category,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		opt.Priority = &priority
	}
	return opt
}
