package ratelimiting_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketRateLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows up to the burst size", func(t *testing.T) {
		t.Parallel()
		limiter, stop := ratelimiting.NewTokenBucketRateLimiter(ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(3))
		defer stop()

		for range 3 {
			require.True(t, limiter.Consume("key"))
		}
		require.False(t, limiter.Consume("key"))
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		t.Parallel()
		limiter, stop := ratelimiting.NewTokenBucketRateLimiter(ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(1))
		defer stop()

		require.True(t, limiter.Consume("a"))
		require.False(t, limiter.Consume("a"))
		require.True(t, limiter.Consume("b"))
	})
}

func TestRequestBasedRateLimiter(t *testing.T) {
	t.Parallel()

	limiter, stop := ratelimiting.NewTokenBucketRateLimiter(ratelimiting.RefillPerSecond(1), ratelimiting.BurstSize(1))
	defer stop()

	requestLimiter := ratelimiting.NewRequestBasedRateLimiter(limiter, ratelimiting.IPKeyFunc)

	requestFrom := func(remoteAddr string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		return r
	}

	require.True(t, requestLimiter.Consume(requestFrom("1.2.3.4:1234")))
	// Same IP from a different port shares the bucket
	require.False(t, requestLimiter.Consume(requestFrom("1.2.3.4:5678")))
	require.True(t, requestLimiter.Consume(requestFrom("5.6.7.8:1234")))
}

func TestIPKeyFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		remoteAddr string
		expected   string
	}{
		{"1.2.3.4:1234", "ip: 1.2.3.4"},
		{"1.2.3.4", "ip: 1.2.3.4"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			require.Equal(t, tt.expected, ratelimiting.IPKeyFunc(r))
		})
	}
}
