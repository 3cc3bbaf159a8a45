package model

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DefaultCategory is assigned when the model returns no usable category.
const DefaultCategory = "기타"

// TaskDraft is the normalized output unit of the parsing pipeline, ready
// for persistence by the caller. Immutable once returned.
type TaskDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime     string   `json:"due_time,omitempty"` // HH:MM
	Priority    Priority `json:"priority"`
	Category    []string `json:"category"`
}

// Todo is a persisted task row.
type Todo struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedDate string   `json:"created_date"`
	DueDate     *string  `json:"due_date"` // RFC3339 timestamp, nullable
	Priority    Priority `json:"priority"`
	Category    []string `json:"category"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// AnalysisPeriod selects the window an analysis covers.
type AnalysisPeriod string

const (
	PeriodToday AnalysisPeriod = "today"
	PeriodWeek  AnalysisPeriod = "week"
)

// Valid reports whether p is a supported analysis period.
func (p AnalysisPeriod) Valid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// Analysis is the AI-generated summary bundle for a todo collection.
type Analysis struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
