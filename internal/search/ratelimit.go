package search

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
)

// RateLimiter bounds the rate of search index calls with a token bucket.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst size.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until a call is allowed or the context is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	metrics.IndexRateLimitWaitsTotal.Inc()
	return nil
}

// Limit returns the configured calls per second.
func (r *RateLimiter) Limit() float64 {
	return float64(r.limiter.Limit())
}

// Burst returns the configured burst size.
func (r *RateLimiter) Burst() int {
	return r.limiter.Burst()
}
