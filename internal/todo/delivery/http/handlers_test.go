package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/middleware"
	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/todo"
	todohttp "ai-todo-backend/internal/todo/delivery/http"
	"ai-todo-backend/internal/todo/gate"
	"ai-todo-backend/internal/todo/repository"
	"ai-todo-backend/pkg/gemini"
	"ai-todo-backend/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	parseOut   todo.ParseOutput
	parseErr   error
	analyzeOut model.Analysis
	analyzeErr error
	gotScope   model.Scope
}

func (m *mockUseCase) Parse(ctx context.Context, sc model.Scope, input todo.ParseInput) (todo.ParseOutput, error) {
	m.gotScope = sc
	if m.parseErr != nil {
		return todo.ParseOutput{}, m.parseErr
	}
	return m.parseOut, nil
}

func (m *mockUseCase) Analyze(ctx context.Context, sc model.Scope, input todo.AnalyzeInput) (model.Analysis, error) {
	m.gotScope = sc
	if m.analyzeErr != nil {
		return model.Analysis{}, m.analyzeErr
	}
	return m.analyzeOut, nil
}

type mockRepo struct {
	todos []model.Todo
	err   error
}

func (m *mockRepo) CreateTodo(ctx context.Context, sc model.Scope, opt repository.CreateTodoOptions) (model.Todo, error) {
	if m.err != nil {
		return model.Todo{}, m.err
	}
	return model.Todo{ID: "t1", UserID: sc.UserID, Title: opt.Title, Priority: opt.Priority, Category: opt.Category}, nil
}

func (m *mockRepo) CreateTodosBatch(ctx context.Context, sc model.Scope, opts []repository.CreateTodoOptions) ([]model.Todo, error) {
	return nil, m.err
}

func (m *mockRepo) GetTodo(ctx context.Context, sc model.Scope, id string) (model.Todo, error) {
	if m.err != nil {
		return model.Todo{}, m.err
	}
	return model.Todo{ID: id, UserID: sc.UserID, Title: "세탁하기"}, nil
}

func (m *mockRepo) ListTodos(ctx context.Context, sc model.Scope, opt repository.ListTodosOptions) ([]model.Todo, error) {
	return m.todos, m.err
}

func (m *mockRepo) UpdateTodo(ctx context.Context, sc model.Scope, id string, opt repository.UpdateTodoOptions) (model.Todo, error) {
	if m.err != nil {
		return model.Todo{}, m.err
	}
	return model.Todo{ID: id, UserID: sc.UserID, Title: "세탁하기", Completed: true}, nil
}

func (m *mockRepo) DeleteTodo(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func newRouter(uc todo.UseCase, repo repository.TodoRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, 0)
	h := todohttp.New(&mockLogger{}, uc, repo)
	todohttp.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	return w
}

func TestParseTodoSingle(t *testing.T) {
	uc := &mockUseCase{
		parseOut: todo.ParseOutput{Items: []model.TaskDraft{{
			Title:    "팀 회의 준비",
			DueDate:  "2024-01-02",
			DueTime:  "15:00",
			Priority: model.PriorityMedium,
			Category: []string{"업무"},
		}}},
	}
	r := newRouter(uc, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/parse-todo", `{"text": "내일 오후 3시 팀 회의 준비"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Multiple {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	data := resp.Data.(map[string]any)
	if data["title"] != "팀 회의 준비" || data["due_date"] != "2024-01-02" {
		t.Errorf("unexpected data: %v", data)
	}
	if uc.gotScope.UserID != "u1" {
		t.Errorf("scope not forwarded: %+v", uc.gotScope)
	}
}

func TestParseTodoMultiple(t *testing.T) {
	uc := &mockUseCase{
		parseOut: todo.ParseOutput{Multiple: true, Items: []model.TaskDraft{
			{Title: "세탁하기", Priority: model.PriorityMedium, Category: []string{"기타"}},
			{Title: "병원 예약", Priority: model.PriorityMedium, Category: []string{"건강"}},
		}},
	}
	r := newRouter(uc, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/parse-todo", `{"text": "세탁하기, 병원 예약"}`)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || !resp.Multiple {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	items := resp.Items.([]any)
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestParseTodoErrorContract(t *testing.T) {
	tcs := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"rejected input", &gate.Rejection{Code: "INVALID_INPUT", Message: "할 일은 최소 2자 이상 입력해주세요."}, http.StatusBadRequest, "INVALID_INPUT"},
		{"past date", &gate.Rejection{Code: "PAST_DATE_NOT_ALLOWED", Message: "과거 날짜에는 할 일을 추가할 수 없습니다."}, http.StatusBadRequest, "PAST_DATE_NOT_ALLOWED"},
		{"rate limited", gemini.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{"auth failed", gemini.ErrAuthFailed, http.StatusInternalServerError, "AUTH_FAILED"},
		{"network", gemini.ErrNetwork, http.StatusInternalServerError, "NETWORK_ERROR"},
		{"malformed generation", todo.ErrMalformedGeneration, http.StatusInternalServerError, "PARSING_ERROR"},
		{"empty response", gemini.ErrEmptyResponse, http.StatusInternalServerError, "AI_PROCESSING_ERROR"},
		{"upstream", gemini.ErrUpstream, http.StatusInternalServerError, "AI_PROCESSING_ERROR"},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{parseErr: tc.err}, &mockRepo{})

			w := doJSON(r, http.MethodPost, "/api/v1/parse-todo", `{"text": "내일 회의"}`)

			if w.Code != tc.wantStatus {
				t.Errorf("code = %d, want %d", w.Code, tc.wantStatus)
			}

			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Success {
				t.Errorf("error response claims success")
			}
			if resp.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tc.wantCode)
			}
			if resp.Error == "" {
				t.Errorf("missing user-facing message")
			}
		})
	}
}

func TestParseTodoUpstreamDetailNotLeaked(t *testing.T) {
	// Upstream failure payloads are for operator logs only; the client gets
	// fixed copy.
	detail := "model overloaded at backend cell 42"
	wrapped := fmt.Errorf("generation failed: %w: %s", gemini.ErrUpstream, detail)
	r := newRouter(&mockUseCase{parseErr: wrapped}, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/parse-todo", `{"text": "내일 회의"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), detail) {
		t.Errorf("upstream detail leaked to client: %s", w.Body.String())
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != "AI_PROCESSING_ERROR" {
		t.Errorf("code = %q, want AI_PROCESSING_ERROR", resp.Code)
	}
	if resp.Error != "AI 처리 중 오류가 발생했습니다. 다시 시도해주세요." {
		t.Errorf("error message = %q", resp.Error)
	}
}

func TestParseTodoMalformedBody(t *testing.T) {
	r := newRouter(&mockUseCase{}, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/parse-todo", `{"text": 42`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", resp.Code)
	}
}

func TestAnalyzeTodos(t *testing.T) {
	uc := &mockUseCase{
		analyzeOut: model.Analysis{
			Summary:         "총 2개의 할 일이 있습니다.",
			UrgentTasks:     []string{},
			Insights:        []string{"완료율이 좋습니다."},
			Recommendations: []string{"화이팅하세요!"},
		},
	}
	r := newRouter(uc, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/analyze-todos", `{"todos": [{"id": "t1", "title": "세탁하기"}], "period": "week"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	if data["summary"] != "총 2개의 할 일이 있습니다." {
		t.Errorf("unexpected data: %v", data)
	}
	if _, ok := data["urgentTasks"]; !ok {
		t.Errorf("urgentTasks missing from payload: %v", data)
	}
}

func TestAnalyzeTodosInvalid(t *testing.T) {
	r := newRouter(&mockUseCase{analyzeErr: todo.ErrInvalidPeriod}, &mockRepo{})

	w := doJSON(r, http.MethodPost, "/api/v1/analyze-todos", `{"todos": [], "period": "month"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
}

func TestTodoCRUD(t *testing.T) {
	r := newRouter(&mockUseCase{}, &mockRepo{todos: []model.Todo{{ID: "t1"}, {ID: "t2"}}})

	t.Run("create", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/todos", `{"title": "세탁하기"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]any)
		if data["user_id"] != "u1" {
			t.Errorf("scope not applied: %v", data)
		}
		if data["priority"] != "medium" {
			t.Errorf("priority default not applied: %v", data)
		}
	})

	t.Run("create requires title", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/todos", `{"description": "no title"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/todos?completed=false", "")
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if items := resp.Items.([]any); len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("detail", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/todos/t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/v1/todos/t1", `{"completed": true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]any)
		if data["completed"] != true {
			t.Errorf("completed not applied: %v", data)
		}
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/v1/todos/t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, &mockRepo{err: repository.ErrTodoNotFound})
		w := doJSON(r, http.MethodGet, "/api/v1/todos/missing", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("code = %d, want 404", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Code != "TODO_NOT_FOUND" {
			t.Errorf("code = %q", resp.Code)
		}
	})
}
