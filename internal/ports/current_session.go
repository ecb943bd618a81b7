package ports

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// MakeGetCurrentSessionHandler serves the state of the most recent session,
// including whether it is still accepting new matches.
func MakeGetCurrentSessionHandler(
	getCurrentSession app.GetCurrentSession,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"currentsession",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		current, err := getCurrentSession(ctx)
		if err != nil {
			// NOTE: GetCurrentSession implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get current session")
			return
		}

		marshalled, err := CurrentSessionToResponseData(current)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert current session to response: %w", err))
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning current session", "isActive", current.IsActive)

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
