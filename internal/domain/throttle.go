package domain

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle paces consecutive calls against a rate-limited backend. The
// orchestrator invokes Wait between generation calls, never after the last.
type Throttle interface {
	Wait(ctx context.Context) error
}

// FixedDelayThrottle waits a constant interval on every call.
type FixedDelayThrottle struct {
	Delay time.Duration
}

func (t FixedDelayThrottle) Wait(ctx context.Context) error {
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RateLimitThrottle enforces an aggregate request-rate ceiling with a token
// bucket. Unlike a fixed delay it stays correct if callers ever run
// generation calls concurrently.
type RateLimitThrottle struct {
	limiter *rate.Limiter
}

// NewRateLimitThrottle builds a throttle allowing perMinute requests per
// minute with no burst beyond a single token.
func NewRateLimitThrottle(perMinute int) *RateLimitThrottle {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimitThrottle{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (t *RateLimitThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// NoThrottle disables pacing entirely.
type NoThrottle struct{}

func (NoThrottle) Wait(context.Context) error { return nil }
