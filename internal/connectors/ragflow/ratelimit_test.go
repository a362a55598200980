package ragflow

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("disabled limiter never blocks", func(t *testing.T) {
		limiter := NewRateLimiter(-1)

		start := time.Now()
		for i := 0; i < 5; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("throttles to the configured rate", func(t *testing.T) {
		limiter := NewRateLimiter(20)

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		// Burst 1: the second and third waits each cost ~50ms.
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("honours cancellation while held off", func(t *testing.T) {
		limiter := NewRateLimiter(-1)
		resp := &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     http.Header{},
		}
		limiter.UpdateFromResponse(resp)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	t.Run("ignores non-429 responses", func(t *testing.T) {
		limiter := NewRateLimiter(-1)

		limiter.UpdateFromResponse(&http.Response{StatusCode: http.StatusOK, Header: http.Header{}})
		limiter.UpdateFromResponse(&http.Response{StatusCode: http.StatusInternalServerError, Header: http.Header{}})
		limiter.UpdateFromResponse(nil)

		assert.True(t, limiter.RetryAt().IsZero())
	})

	t.Run("applies default hold-off without a header", func(t *testing.T) {
		limiter := NewRateLimiter(-1)

		before := time.Now()
		limiter.UpdateFromResponse(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     http.Header{},
		})

		retryAt := limiter.RetryAt()
		assert.WithinDuration(t, before.Add(defaultRetryAfter), retryAt, 100*time.Millisecond)
	})

	t.Run("honours Retry-After seconds", func(t *testing.T) {
		limiter := NewRateLimiter(-1)
		header := http.Header{}
		header.Set(HeaderRetryAfter, "3")

		before := time.Now()
		limiter.UpdateFromResponse(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     header,
		})

		retryAt := limiter.RetryAt()
		assert.WithinDuration(t, before.Add(3*time.Second), retryAt, 100*time.Millisecond)
	})

	t.Run("ignores malformed Retry-After", func(t *testing.T) {
		limiter := NewRateLimiter(-1)
		header := http.Header{}
		header.Set(HeaderRetryAfter, "soon")

		before := time.Now()
		limiter.UpdateFromResponse(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     header,
		})

		assert.WithinDuration(t, before.Add(defaultRetryAfter), limiter.RetryAt(), 100*time.Millisecond)
	})
}
