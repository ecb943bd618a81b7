package ports_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/ports"
	"github.com/stretchr/testify/require"
)

func TestMakeLogMatchHandler(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com")
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	t.Run("stores a valid match", func(t *testing.T) {
		t.Parallel()
		var logged *domain.Match
		handler := ports.MakeLogMatchHandler(
			func(ctx context.Context, match domain.Match) (domain.Match, error) {
				logged = &match
				match.ID = "generated-id"
				return match, nil
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{
			"played_at": "2024-03-09T19:00:00Z",
			"winner": "Alice",
			"character_one": "Fox",
			"character_two": "Falco",
			"stocks_remaining": 2
		}`)))

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"success": true, "match_id": "generated-id"}`, string(body))

		require.NotNil(t, logged)
		require.Equal(t, "Alice", logged.Winner)
		require.Equal(t, "Fox", logged.CharacterOne)
		require.Equal(t, "Falco", logged.CharacterTwo)
		require.Equal(t, time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC), logged.PlayedAt)
		require.NotNil(t, logged.StocksRemaining)
		require.Equal(t, 2, *logged.StocksRemaining)
	})

	t.Run("omitted fields stay zero", func(t *testing.T) {
		t.Parallel()
		var logged *domain.Match
		handler := ports.MakeLogMatchHandler(
			func(ctx context.Context, match domain.Match) (domain.Match, error) {
				logged = &match
				return match, nil
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"winner": "Bob"}`)))

		require.Equal(t, http.StatusOK, w.Result().StatusCode)
		require.NotNil(t, logged)
		require.True(t, logged.PlayedAt.IsZero())
		require.Nil(t, logged.StocksRemaining)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{"", "not json", `{"played_at": "yesterday"}`} {
			t.Run(fmt.Sprintf("body %q", body), func(t *testing.T) {
				t.Parallel()
				handler := ports.MakeLogMatchHandler(
					func(ctx context.Context, match domain.Match) (domain.Match, error) {
						t.Error("logMatch should not be called")
						return domain.Match{}, nil
					},
					allowedOrigins,
					testLogger,
					noopMiddleware,
				)

				w := httptest.NewRecorder()
				handler(w, httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(body)))

				require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
			})
		}
	})

	t.Run("unknown winner", func(t *testing.T) {
		t.Parallel()
		handler := ports.MakeLogMatchHandler(
			func(ctx context.Context, match domain.Match) (domain.Match, error) {
				return domain.Match{}, fmt.Errorf("%w: %q", domain.ErrUnknownWinner, match.Winner)
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"winner": "Mallory"}`)))

		require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		handler := ports.MakeLogMatchHandler(
			func(ctx context.Context, match domain.Match) (domain.Match, error) {
				return domain.Match{}, errors.New("boom")
			},
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"winner": "Alice"}`)))

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
