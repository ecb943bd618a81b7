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

// MakeGetTimelineHandler serves the session timeline feed, ordered by time
// ascending.
func MakeGetTimelineHandler(
	getTimeline app.GetTimeline,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"timeline",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		points, err := getTimeline(ctx)
		if err != nil {
			// NOTE: GetTimeline implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get timeline")
			return
		}

		marshalled, err := TimelineToResponseData(points)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert timeline to response: %w", err), map[string]string{
				"length": strconv.Itoa(len(points)),
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning timeline data")

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
