package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the fallback outbound call budget, in requests per
// minute.
const DefaultRateLimit = 60

// RateLimiter throttles outbound AI provider calls so a burst of inbound
// requests cannot blow through the provider's quota.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	limit   int
}

// NewRateLimiter creates a limiter allowing perMinute calls per minute.
// Non-positive values select DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	rl.SetLimit(perMinute)
	return rl
}

// GetLimit returns the configured per-minute limit.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// SetLimit replaces the per-minute limit. Non-positive values select
// DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = perMinute
	r.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}

// Wait blocks until a call is permitted or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
