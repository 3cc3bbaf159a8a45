package todo

import "ai-todo-backend/internal/model"

// ParseInput is the input for natural-language task parsing.
type ParseInput struct {
	Text string // Raw task description(s) from the user
}

// ParseOutput is the result of the parsing pipeline. Multiple is set when
// the input was split into several tasks; Items then preserves the input
// segment order. A single-task request yields exactly one item.
type ParseOutput struct {
	Multiple bool
	Items    []model.TaskDraft
}

// Draft returns the single task of a non-multiple result.
func (o ParseOutput) Draft() model.TaskDraft {
	if len(o.Items) == 0 {
		return model.TaskDraft{}
	}
	return o.Items[0]
}

// AnalyzeInput is the input for the todo-collection analysis.
type AnalyzeInput struct {
	Todos  []model.Todo
	Period model.AnalysisPeriod
}
