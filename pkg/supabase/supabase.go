package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the Supabase PostgREST API. Rows travel as
// JSON; filtering uses PostgREST query operators (eq., lt., order, limit).
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// Config holds Supabase client configuration.
type Config struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("supabase: URL is required")
	}
	if c.ServiceKey == "" {
		return fmt.Errorf("supabase: ServiceKey is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// New creates a new Supabase PostgREST client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Insert creates rows in the given table via POST /rest/v1/<table> and
// decodes the returned representation into out when out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, record any, out any) error {
	return c.do(ctx, http.MethodPost, table, nil, record, out)
}

// Select fetches rows matching the PostgREST query into out.
func (c *Client) Select(ctx context.Context, table string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, query, nil, out)
}

// Update patches rows matching the PostgREST query and decodes the returned
// representation into out when out is non-nil.
func (c *Client) Update(ctx context.Context, table string, query url.Values, patch any, out any) error {
	return c.do(ctx, http.MethodPatch, table, query, patch, out)
}

// Delete removes rows matching the PostgREST query.
func (c *Client) Delete(ctx context.Context, table string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, table, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", table, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", table, err)
	}
	httpReq.Header.Set("apikey", c.serviceKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceKey))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		httpReq.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase %s API: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode supabase %s response: %w", table, err)
		}
	}
	return nil
}
