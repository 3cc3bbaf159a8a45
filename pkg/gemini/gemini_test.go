package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-todo-backend/pkg/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (gemini.IGemini, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts
}

func textRequest(text string) *gemini.Request {
	return &gemini.Request{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: text}}},
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	cfg = gemini.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("Model = %q, want default %q", cfg.Model, gemini.DefaultModel)
	}
	if cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("APIURL = %q, want default %q", cfg.APIURL, gemini.DefaultAPIURL)
	}
	if cfg.HTTPClient == nil {
		t.Errorf("HTTPClient not defaulted")
	}
}

func TestGenerateContentSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req gemini.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"title\":\"ok\"}"}]}}
			]
		}`))
	})

	resp, err := client.GenerateContent(context.Background(), textRequest("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Text(); got != `{"title":"ok"}` {
		t.Errorf("Text() = %q", got)
	}
}

func TestGenerateContentClassifiesErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       error
	}{
		{
			name:       "quota phrasing on 429",
			statusCode: http.StatusTooManyRequests,
			body:       `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`,
			want:       gemini.ErrRateLimited,
		},
		{
			name:       "quota phrasing on 400",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"code":400,"message":"Quota exceeded for requests","status":"FAILED_PRECONDITION"}}`,
			want:       gemini.ErrRateLimited,
		},
		{
			name:       "invalid api key",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`,
			want:       gemini.ErrAuthFailed,
		},
		{
			name:       "forbidden status",
			statusCode: http.StatusForbidden,
			body:       `{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`,
			want:       gemini.ErrAuthFailed,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error":{"code":500,"message":"Internal error encountered.","status":"INTERNAL"}}`,
			want:       gemini.ErrUpstream,
		},
		{
			name:       "unstructured error body",
			statusCode: http.StatusBadGateway,
			body:       `bad gateway`,
			want:       gemini.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			_, err := client.GenerateContent(context.Background(), textRequest("hi"))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			var apiErr *gemini.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not an *APIError", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestGenerateContentNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close() // connection refused from here on

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), textRequest("hi"))
	if !errors.Is(err, gemini.ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
}

func TestGenerateContentEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates": []}`},
		{"no parts", `{"candidates": [{"content": {"role": "model", "parts": []}}]}`},
		{"empty text", `{"candidates": [{"content": {"role": "model", "parts": [{"text": ""}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.GenerateContent(context.Background(), textRequest("hi"))
			if !errors.Is(err, gemini.ErrEmptyResponse) {
				t.Fatalf("error = %v, want ErrEmptyResponse", err)
			}
		})
	}
}
