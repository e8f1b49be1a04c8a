package uniprot

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// RateLimiter throttles requests proactively. UniProt publishes no quota
// headers, so unlike API-metered registries there is nothing to track
// reactively beyond 429 responses.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRequestsPerSecond
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// CheckResponse returns a RateLimitError if the response indicates rate
// limiting, nil otherwise.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	var retryAfter time.Duration
	if v := resp.Header.Get(HeaderRetryAfter); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}

	return &RateLimitError{RetryAfter: retryAfter}
}
