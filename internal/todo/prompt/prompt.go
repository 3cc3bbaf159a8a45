// Package prompt composes the instruction documents sent to the generation
// service. Composition is deterministic: same input and anchor table, same
// document. Nothing here guesses field values; absence in the input means
// omission in the instructions.
package prompt

import (
	"fmt"
	"strings"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/pkg/datemath"
)

// BuildParsePrompt builds the task-extraction document for one segment.
func BuildParsePrompt(text string, a datemath.Anchors) string {
	r := strings.NewReplacer(
		"{today}", a.Today,
		"{weekday}", a.Weekday,
		"{tomorrow}", a.Tomorrow,
		"{day_after}", a.DayAfter,
		"{d1}", a.DaysLater[0],
		"{d2}", a.DaysLater[1],
		"{d3}", a.DaysLater[2],
		"{d4}", a.DaysLater[3],
		"{d5}", a.DaysLater[4],
		"{d6}", a.DaysLater[5],
		"{d7}", a.DaysLater[6],
		"{two_weeks}", a.TwoWeeksLater,
		"{one_month}", a.OneMonthLater,
		"{next_monday}", a.NextMonday,
		"{text}", text,
	)
	return r.Replace(parsePromptTemplate)
}

// BuildAnalyzePrompt builds the analysis document for a todo collection.
func BuildAnalyzePrompt(todos []model.Todo, period model.AnalysisPeriod, a datemath.Anchors) string {
	total := len(todos)
	completed := 0
	var high, medium, low int
	var overdue, upcoming int

	for _, t := range todos {
		if t.Completed {
			completed++
		}
		switch t.Priority {
		case model.PriorityHigh:
			high++
		case model.PriorityLow:
			low++
		default:
			medium++
		}

		due := dueDateOf(t)
		if due == "" || t.Completed {
			continue
		}
		// ISO dates compare lexically.
		if due < a.Today {
			overdue++
		} else if due <= a.DaysLater[2] {
			upcoming++
		}
	}

	rate := 0
	if total > 0 {
		rate = completed * 100 / total
	}

	periodText := "오늘"
	guidance := analyzeGuidanceToday
	if period == model.PeriodWeek {
		periodText = "이번 주"
		guidance = analyzeGuidanceWeek
	}

	header := fmt.Sprintf(analyzePromptHeader,
		a.Today, a.Weekday, periodText,
		total, completed, rate, total-completed,
		high, medium, low,
		overdue, upcoming,
		formatTodoList(todos), guidance,
	)

	return header + analyzePromptRules
}

// formatTodoList renders the todo collection as the numbered detail block
// the analysis prompt embeds.
func formatTodoList(todos []model.Todo) string {
	var sb strings.Builder
	for i, t := range todos {
		status := "⬜ 미완료"
		if t.Completed {
			status = "✅ 완료"
		}

		priority := "🟢 낮음"
		switch t.Priority {
		case model.PriorityHigh:
			priority = "🔴 높음"
		case model.PriorityMedium:
			priority = "🟡 중간"
		}

		due := dueDateOf(t)
		if due == "" {
			due = "마감일 없음"
		}

		category := "카테고리 없음"
		if len(t.Category) > 0 {
			category = strings.Join(t.Category, ", ")
		}

		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "%d. [%s] %s\n   - 우선순위: %s\n   - 마감일: %s\n   - 카테고리: %s",
			i+1, status, t.Title, priority, due, category)
	}
	return sb.String()
}

// dueDateOf returns the YYYY-MM-DD part of a todo's due date, or "".
// Stored due dates are RFC3339 timestamps; the calendar date prefix is all
// the analysis needs.
func dueDateOf(t model.Todo) string {
	if t.DueDate == nil || len(*t.DueDate) < len(datemath.DateFormat) {
		return ""
	}
	return (*t.DueDate)[:len(datemath.DateFormat)]
}
