package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// Classified failure modes of a generation call. Callers branch on these
// with errors.Is; the raw upstream message stays inside APIError for logs.
var (
	// ErrRateLimited indicates the API quota or rate limit was exceeded
	ErrRateLimited = errors.New("gemini: rate limited")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("gemini: authentication failed")

	// ErrNetwork indicates a transport-level failure before an HTTP response
	ErrNetwork = errors.New("gemini: network error")

	// ErrUpstream indicates an HTTP-level upstream failure of any other kind
	ErrUpstream = errors.New("gemini: upstream error")

	// ErrEmptyResponse indicates HTTP success with no generated content
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// APIError carries the upstream error payload of a non-success response.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// classifyAPIError maps an upstream error response onto a sentinel.
// Quota errors are recognized by phrasing as well as status code because
// the API reports some quota failures with a generic code.
func classifyAPIError(statusCode int, body apiErrorBody) *APIError {
	msg := strings.ToLower(body.Error.Message)

	kind := ErrUpstream
	switch {
	case statusCode == 429,
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "too many requests"):
		kind = ErrRateLimited
	case statusCode == 401, statusCode == 403,
		strings.Contains(msg, "api key"),
		strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "forbidden"):
		kind = ErrAuthFailed
	}

	return &APIError{
		StatusCode: statusCode,
		Status:     body.Error.Status,
		Message:    body.Error.Message,
		kind:       kind,
	}
}
