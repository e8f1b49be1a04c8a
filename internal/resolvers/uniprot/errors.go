package uniprot

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError indicates the registry rejected a request for rate
// limiting, with an optional retry hint from the Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("uniprot: rate limited, retry after %s", e.RetryAfter)
	}
	return "uniprot: rate limited"
}

// APIError represents a non-2xx response from the registry.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("uniprot: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 429
}

// IsServerError checks if the error indicates a 5xx registry failure.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
