package http

import (
	"errors"
	"net/http"

	"ai-todo-backend/internal/todo"
	"ai-todo-backend/internal/todo/gate"
	"ai-todo-backend/internal/todo/repository"
	"ai-todo-backend/pkg/gemini"
)

// Stable machine codes of the error contract. Clients branch on these, so
// they never change even when the message copy does.
const (
	codeInvalidInput      = "INVALID_INPUT"
	codeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	codeAuthFailed        = "AUTH_FAILED"
	codeNetworkError      = "NETWORK_ERROR"
	codeParsingError      = "PARSING_ERROR"
	codeAIProcessingError = "AI_PROCESSING_ERROR"
	codeTodoNotFound      = "TODO_NOT_FOUND"
	codeUnknownError      = "UNKNOWN_ERROR"
)

// mapError translates domain errors into the HTTP status, machine code and
// user-facing Korean message of the response contract. Unknown errors never
// leak internals to the client.
func (h *handler) mapError(err error) (int, string, string) {
	var rej *gate.Rejection
	if errors.As(err, &rej) {
		return http.StatusBadRequest, rej.Code, rej.Message
	}

	switch {
	case errors.Is(err, todo.ErrInvalidTodos):
		return http.StatusBadRequest, codeInvalidInput, "할 일 목록이 올바르지 않습니다."
	case errors.Is(err, todo.ErrInvalidPeriod):
		return http.StatusBadRequest, codeInvalidInput, "분석 기간은 today 또는 week만 지원합니다."
	case errors.Is(err, repository.ErrTodoNotFound):
		return http.StatusNotFound, codeTodoNotFound, "할 일을 찾을 수 없습니다."
	case errors.Is(err, gemini.ErrRateLimited):
		return http.StatusTooManyRequests, codeRateLimitExceeded, "API 호출 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
	case errors.Is(err, gemini.ErrAuthFailed):
		return http.StatusInternalServerError, codeAuthFailed, "AI 서비스 인증에 실패했습니다. 관리자에게 문의해주세요."
	case errors.Is(err, gemini.ErrNetwork):
		return http.StatusInternalServerError, codeNetworkError, "AI 서비스에 연결할 수 없습니다. 인터넷 연결을 확인하고 다시 시도해주세요."
	case errors.Is(err, todo.ErrMalformedGeneration):
		return http.StatusInternalServerError, codeParsingError, "AI 응답을 처리하는 중 오류가 발생했습니다. 입력을 조금 다르게 표현해보세요."
	case errors.Is(err, gemini.ErrEmptyResponse), errors.Is(err, gemini.ErrUpstream):
		return http.StatusInternalServerError, codeAIProcessingError, "AI 처리 중 오류가 발생했습니다. 다시 시도해주세요."
	}

	return http.StatusInternalServerError, codeUnknownError, "예상치 못한 오류가 발생했습니다. 다시 시도해주세요."
}
