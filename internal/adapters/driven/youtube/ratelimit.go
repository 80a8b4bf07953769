package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// DefaultBackoff is applied after a rate limit response without a
// Retry-After hint.
const DefaultBackoff = 60 * time.Second

// RateLimiter paces requests to the search API.
// It uses a token bucket plus a backoff window opened by quota errors.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// NewRateLimiter creates a limiter from the API section of the app config.
// Non-positive values fall back to the defaults.
func NewRateLimiter(cfg domain.APIConfig) *RateLimiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = domain.DefaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = domain.DefaultRequestBurst
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		now:     time.Now,
	}
}

// Wait blocks until a request may be made.
// While a backoff window is open it fails fast with domain.ErrRateLimited
// rather than stalling the caller for the whole window.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	now := r.now()
	r.mu.Unlock()

	if now.Before(retryAt) {
		return fmt.Errorf("%w: retry in %s", domain.ErrRateLimited, retryAt.Sub(now).Round(time.Second))
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError opens a backoff window.
func (r *RateLimiter) RecordRateLimitError(retryAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfter <= 0 {
		retryAfter = DefaultBackoff
	}
	r.retryAt = r.now().Add(retryAfter)
}
