package ports

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// MakeGetSessionsHandler serves the session list feed, most recent session
// first.
func MakeGetSessionsHandler(
	getSessions app.GetSessions,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"sessions",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessions, err := getSessions(ctx)
		if err != nil {
			// NOTE: GetSessions implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get sessions")
			return
		}

		marshalled, err := SessionsToResponseData(sessions)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert sessions to response: %w", err), map[string]string{
				"length": strconv.Itoa(len(sessions)),
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning session list")

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
