package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
)

// rawDraft is the untrusted shape of the model's JSON output. Category is
// kept raw because models occasionally emit a bare string instead of a
// list; every field is validated individually before it reaches TaskDraft.
type rawDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     string          `json:"due_date"`
	DueTime     string          `json:"due_time"`
	Priority    string          `json:"priority"`
	Category    json.RawMessage `json:"category"`
}

var (
	codeFence   = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	dueDateForm = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dueTimeForm = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// repairDraft extracts the JSON object from the raw model text and coerces
// it field by field into a TaskDraft, falling back to the original segment
// where the model came up short. today is the request's KST reference date
// used only to flag model-inferred past dates. Normalization is idempotent:
// feeding a repaired draft back through changes nothing.
func (uc *implUseCase) repairDraft(ctx context.Context, rawText, segment, today string) (model.TaskDraft, error) {
	cleaned := stripCodeFence(rawText)

	var raw rawDraft
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		uc.l.Errorf(ctx, "repairDraft: unparseable model output: raw=%q cleaned=%q err=%v", rawText, cleaned, err)
		return model.TaskDraft{}, fmt.Errorf("%w: %v", todo.ErrMalformedGeneration, err)
	}

	draft := model.TaskDraft{
		Title:       normalizeTitle(raw.Title, segment),
		Description: truncateRunes(raw.Description, descriptionMaxRunes),
		Priority:    normalizePriority(raw.Priority),
		Category:    normalizeCategory(raw.Category),
	}

	if raw.DueDate != "" {
		if !dueDateForm.MatchString(raw.DueDate) {
			// A time without a valid date is meaningless; drop both.
			uc.l.Warnf(ctx, "repairDraft: invalid due_date %q, dropping date and time", raw.DueDate)
			raw.DueDate, raw.DueTime = "", ""
		} else {
			if raw.DueDate < today {
				// Accepted: the gate already refused intentionally-past
				// phrasing; a model-inferred past date is the caller's call.
				uc.l.Warnf(ctx, "repairDraft: model produced past due_date %q", raw.DueDate)
			}
			draft.DueDate = raw.DueDate
		}
	}

	if raw.DueTime != "" {
		if dueTimeForm.MatchString(raw.DueTime) {
			draft.DueTime = raw.DueTime
		} else {
			uc.l.Warnf(ctx, "repairDraft: invalid due_time %q, dropping", raw.DueTime)
		}
	}

	return draft, nil
}

// stripCodeFence removes Markdown code-fence decoration, with or without a
// language tag, and trims surrounding prose down to the JSON payload.
func stripCodeFence(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "}]")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

func normalizeTitle(title, segment string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = truncatePrefix(segment, titleFallbackRunes)
	}
	if runes := []rune(title); len(runes) > titleMaxRunes {
		title = string(runes[:titleMaxRunes-3]) + "..."
	}
	if len([]rune(title)) < titleMinRunes {
		title = truncatePrefix(segment, titleFallbackRunes)
	}
	return title
}

func normalizePriority(p string) model.Priority {
	if prio := model.Priority(p); prio.Valid() {
		return prio
	}
	return model.PriorityMedium
}

func normalizeCategory(raw json.RawMessage) []string {
	var categories []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &categories)
	}
	filtered := categories[:0]
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return []string{model.DefaultCategory}
	}
	return filtered
}

// truncatePrefix returns up to max runes of s.
func truncatePrefix(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// truncateRunes caps s at max runes, replacing the tail with an ellipsis.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
