package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_BurstAllowsImmediateCalls(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3)
	assert.InDelta(t, 1.0, rl.Limit(), 0.001)
	assert.Equal(t, 3, rl.Burst())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for range 3 {
		require.NoError(t, rl.Wait(ctx))
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}

func TestRateLimiter_ExceedingDeadlineFails(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.5, 1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// The next token is two seconds away, beyond the deadline.
	require.Error(t, rl.Wait(ctx))
}
