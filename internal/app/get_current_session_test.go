package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildGetCurrentSession(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 9, 22, 0, 0, 0, time.UTC)
	nowFunc := func() time.Time { return now }

	sessionsReturning := func(sessions []domain.Session) app.GetSessions {
		return func(ctx context.Context) ([]domain.Session, error) {
			return sessions, nil
		}
	}

	t.Run("no sessions", func(t *testing.T) {
		t.Parallel()
		getCurrentSession := app.BuildGetCurrentSession(sessionsReturning([]domain.Session{}), nowFunc)

		current, err := getCurrentSession(context.Background())
		require.NoError(t, err)
		require.Nil(t, current.Session)
		require.False(t, current.IsActive)
	})

	t.Run("recent session is active", func(t *testing.T) {
		t.Parallel()
		getCurrentSession := app.BuildGetCurrentSession(sessionsReturning([]domain.Session{
			{ID: "2024-03-09-19", Start: now.Add(-3 * time.Hour), End: now.Add(-1 * time.Hour), Games: 4},
			{ID: "2024-03-01-19", Start: now.Add(-8 * 24 * time.Hour), End: now.Add(-8 * 24 * time.Hour)},
		}), nowFunc)

		current, err := getCurrentSession(context.Background())
		require.NoError(t, err)
		require.NotNil(t, current.Session)
		require.Equal(t, "2024-03-09-19", current.Session.ID)
		require.True(t, current.IsActive)
	})

	t.Run("session ending exactly one gap ago is still active", func(t *testing.T) {
		t.Parallel()
		getCurrentSession := app.BuildGetCurrentSession(sessionsReturning([]domain.Session{
			{ID: "2024-03-09-14", Start: now.Add(-5 * time.Hour), End: now.Add(-domain.SessionGap)},
		}), nowFunc)

		current, err := getCurrentSession(context.Background())
		require.NoError(t, err)
		require.True(t, current.IsActive)
	})

	t.Run("old session is not active", func(t *testing.T) {
		t.Parallel()
		getCurrentSession := app.BuildGetCurrentSession(sessionsReturning([]domain.Session{
			{ID: "2024-03-09-10", Start: now.Add(-12 * time.Hour), End: now.Add(-domain.SessionGap - time.Second)},
		}), nowFunc)

		current, err := getCurrentSession(context.Background())
		require.NoError(t, err)
		require.NotNil(t, current.Session)
		require.False(t, current.IsActive)
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()
		sessionsErr := errors.New("boom")
		getCurrentSession := app.BuildGetCurrentSession(func(ctx context.Context) ([]domain.Session, error) {
			return nil, sessionsErr
		}, nowFunc)

		_, err := getCurrentSession(context.Background())
		require.ErrorIs(t, err, sessionsErr)
	})
}
