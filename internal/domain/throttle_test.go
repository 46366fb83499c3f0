package domain_test

import (
	"context"
	"testing"
	"time"

	"hospital-recommender/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFixedDelayThrottle_Waits(t *testing.T) {
	throttle := domain.FixedDelayThrottle{Delay: 20 * time.Millisecond}

	start := time.Now()
	err := throttle.Wait(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedDelayThrottle_CancelledContext(t *testing.T) {
	throttle := domain.FixedDelayThrottle{Delay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := throttle.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoThrottle_ReturnsImmediately(t *testing.T) {
	assert.NoError(t, domain.NoThrottle{}.Wait(context.Background()))
}

func TestRateLimitThrottle_FirstWaitIsImmediate(t *testing.T) {
	throttle := domain.NewRateLimitThrottle(60)

	start := time.Now()
	err := throttle.Wait(context.Background())

	assert.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
