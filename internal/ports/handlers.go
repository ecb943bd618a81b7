package ports

import (
	"log/slog"
	"net/http"

	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// newFeedMiddleware composes the standard middleware stack for one feed
// handler: request metrics, request logger, sentry, report meta, CORS and an
// IP-based token bucket.
func newFeedMiddleware(
	port string,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	refillPerSecond ratelimiting.RefillPerSecond,
	burstSize ratelimiting.BurstSize,
) func(http.HandlerFunc) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(refillPerSecond, burstSize)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	onLimitExceeded := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)

		statusCode := http.StatusTooManyRequests

		logger.Info("Rate limit exceeded", "statusCode", statusCode, "reason", "ratelimit exceeded", "key", ipRateLimiter.KeyFor(r))

		writeError(w, r, statusCode, "Rate limit exceeded")
	}

	return ComposeMiddlewares(
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware(port),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, onLimitExceeded),
	)
}
