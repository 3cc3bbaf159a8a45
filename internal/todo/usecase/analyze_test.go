package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/usecase"
)

func strPtr(s string) *string { return &s }

func sampleTodos() []model.Todo {
	return []model.Todo{
		{ID: "t1", Title: "보고서 작성", Priority: model.PriorityHigh, DueDate: strPtr("2024-01-02T00:00:00Z")},
		{ID: "t2", Title: "세탁하기", Priority: model.PriorityLow, Completed: true},
		{ID: "t3", Title: "병원 예약", Priority: model.PriorityMedium, DueDate: strPtr("2023-12-28T00:00:00Z")},
	}
}

func TestAnalyzeEmptyList(t *testing.T) {
	llm := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("generation call made for empty todo list")
		w.WriteHeader(http.StatusInternalServerError)
	})

	uc := usecase.New(&mockLogger{}, llm, fixedNow)

	tcs := []struct {
		period      model.AnalysisPeriod
		wantSummary string
	}{
		{model.PeriodToday, "오늘 등록된 할 일이 없습니다."},
		{model.PeriodWeek, "이번 주 등록된 할 일이 없습니다."},
	}

	for _, tc := range tcs {
		t.Run(string(tc.period), func(t *testing.T) {
			out, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, todo.AnalyzeInput{
				Todos:  []model.Todo{},
				Period: tc.period,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Summary != tc.wantSummary {
				t.Errorf("summary = %q, want %q", out.Summary, tc.wantSummary)
			}
			if out.UrgentTasks == nil || len(out.UrgentTasks) != 0 {
				t.Errorf("urgentTasks = %v, want empty non-nil slice", out.UrgentTasks)
			}
			if len(out.Insights) != 1 || len(out.Recommendations) != 1 {
				t.Errorf("expected canned insight and recommendation, got %v / %v", out.Insights, out.Recommendations)
			}
		})
	}
}

func TestAnalyzeInvalidInput(t *testing.T) {
	llm := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("generation call made for invalid input")
	})

	uc := usecase.New(&mockLogger{}, llm, fixedNow)

	if _, err := uc.Analyze(context.Background(), model.Scope{}, todo.AnalyzeInput{Todos: nil, Period: model.PeriodToday}); !errors.Is(err, todo.ErrInvalidTodos) {
		t.Errorf("nil todos: error = %v, want ErrInvalidTodos", err)
	}
	if _, err := uc.Analyze(context.Background(), model.Scope{}, todo.AnalyzeInput{Todos: sampleTodos(), Period: "month"}); !errors.Is(err, todo.ErrInvalidPeriod) {
		t.Errorf("bad period: error = %v, want ErrInvalidPeriod", err)
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	llm := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
		prompt := promptOf(r)
		// The prompt must carry the computed stats and the todo list.
		if !strings.Contains(prompt, "보고서 작성") {
			t.Errorf("prompt missing todo title: %q", prompt)
		}
		if !strings.Contains(prompt, "전체 할 일: 3개") {
			t.Errorf("prompt missing total count")
		}

		fmt.Fprint(w, candidateBody(`{
			"summary": "완료율이 좋아지고 있어요.",
			"urgentTasks": ["보고서 작성"],
			"insights": ["업무 비중이 높습니다."],
			"recommendations": ["마감이 지난 할 일부터 처리하세요."]
		}`))
	})

	uc := usecase.New(&mockLogger{}, llm, fixedNow)

	out, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, todo.AnalyzeInput{
		Todos:  sampleTodos(),
		Period: model.PeriodWeek,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "완료율이 좋아지고 있어요." {
		t.Errorf("summary = %q", out.Summary)
	}
	if len(out.UrgentTasks) != 1 || out.UrgentTasks[0] != "보고서 작성" {
		t.Errorf("urgentTasks = %v", out.UrgentTasks)
	}
}

func TestAnalyzeRepairDefaults(t *testing.T) {
	// A syntactically valid but hollow response still yields a complete
	// analysis.
	llm := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateBody(`{"summary": ""}`))
	})

	uc := usecase.New(&mockLogger{}, llm, fixedNow)

	out, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, todo.AnalyzeInput{
		Todos:  sampleTodos(),
		Period: model.PeriodToday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "총 3개의 할 일이 있습니다." {
		t.Errorf("summary = %q", out.Summary)
	}
	if out.UrgentTasks == nil {
		t.Errorf("urgentTasks is nil, want empty slice")
	}
	if len(out.Insights) != 1 || len(out.Recommendations) != 1 {
		t.Errorf("defaults not applied: insights=%v recommendations=%v", out.Insights, out.Recommendations)
	}
}

func TestAnalyzeMalformedGeneration(t *testing.T) {
	llm := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateBody("I could not produce the analysis."))
	})

	uc := usecase.New(&mockLogger{}, llm, fixedNow)

	_, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, todo.AnalyzeInput{
		Todos:  sampleTodos(),
		Period: model.PeriodToday,
	})
	if !errors.Is(err, todo.ErrMalformedGeneration) {
		t.Errorf("error = %v, want ErrMalformedGeneration", err)
	}
}
