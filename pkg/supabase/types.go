package supabase

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single PostgREST round trip.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from PostgREST, body included verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase API error %d: %s", e.StatusCode, e.Body)
}

// NotFound reports whether err is a PostgREST 404/406 answer, which is what
// single-object requests return when no row matches.
func NotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusNotAcceptable
}
