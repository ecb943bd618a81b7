package ports_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/ports"
	"github.com/stretchr/testify/require"
)

func TestMakeGetTimelineHandler(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com")
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	t.Run("returns one point per session", func(t *testing.T) {
		t.Parallel()
		handler := ports.MakeGetTimelineHandler(
			func(ctx context.Context) ([]domain.TimelinePoint, error) {
				return []domain.TimelinePoint{
					{
						SessionID:       "2024-03-09-19",
						StartedAt:       time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC),
						GameCount:       10,
						WinsOne:         6,
						WinsTwo:         4,
						DurationMinutes: 85,
					},
					{
						SessionID:       "2024-03-10-12",
						StartedAt:       time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC),
						GameCount:       2,
						WinsOne:         1,
						WinsTwo:         1,
						DurationMinutes: 15,
					},
				}, nil
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/api/sessions/timeline", nil))

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"success": true,
			"total_sessions": 2,
			"data": [
				{
					"session_id": "2024-03-09-19",
					"date": "2024-03-09",
					"datetime": "2024-03-09 19:00:00",
					"games": 10,
					"player_one_wins": 6,
					"player_two_wins": 4,
					"duration_minutes": 85
				},
				{
					"session_id": "2024-03-10-12",
					"date": "2024-03-10",
					"datetime": "2024-03-10 12:30:00",
					"games": 2,
					"player_one_wins": 1,
					"player_two_wins": 1,
					"duration_minutes": 15
				}
			]
		}`, string(body))
	})

	t.Run("failure reports an error response", func(t *testing.T) {
		t.Parallel()
		handler := ports.MakeGetTimelineHandler(
			func(ctx context.Context) ([]domain.TimelinePoint, error) {
				return nil, errors.New("boom")
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/api/sessions/timeline", nil))

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
