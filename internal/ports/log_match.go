package ports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// MakeLogMatchHandler records a single finished match.
func MakeLogMatchHandler(
	logMatch app.LogMatch,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"logmatch",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(40),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Info("Failed to read request body", "error", err)
			writeError(w, r, http.StatusBadRequest, "Failed to read request body")
			return
		}

		var request logMatchRequest
		err = json.Unmarshal(body, &request)
		if err != nil {
			logger.Info("Failed to parse request body", "error", err)
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		match, err := logMatch(ctx, request.toMatch())
		if err != nil {
			if errors.Is(err, domain.ErrUnknownWinner) {
				writeError(w, r, http.StatusBadRequest, "Winner is not one of the tracked players")
				return
			}
			// NOTE: LogMatch implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to store match")
			return
		}

		marshalled, err := LoggedMatchToResponseData(match)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert logged match to response: %w", err), map[string]string{
				"matchID": match.ID,
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logger.Info("Logged match", slog.String("matchID", match.ID))

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
