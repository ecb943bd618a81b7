package ports

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// MakeGetSessionDetailHandler serves the per-session breakdown for one
// session, addressed by id in the path.
func MakeGetSessionDetailHandler(
	getSessionDetail app.GetSessionDetail,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"sessiondetail",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := r.PathValue("session_id")
		if sessionID == "" {
			writeError(w, r, http.StatusBadRequest, "Missing session id")
			return
		}

		ctx = logging.AddMetaToContext(ctx, slog.String("sessionID", sessionID))

		detail, err := getSessionDetail(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				writeError(w, r, http.StatusNotFound, fmt.Sprintf("Session %s not found", sessionID))
				return
			}
			// NOTE: GetSessionDetail implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get session detail")
			return
		}

		marshalled, err := SessionDetailToResponseData(detail)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert session detail to response: %w", err), map[string]string{
				"sessionID": sessionID,
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning session detail")

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
