package app

import (
	"context"
	"fmt"
	"time"

	"github.com/smashlog/smashlog/internal/domain"
)

// CurrentSession describes the most recent session. Session is nil when no
// matches have been logged yet.
type CurrentSession struct {
	Session  *domain.Session
	IsActive bool
}

type GetCurrentSession = func(ctx context.Context) (CurrentSession, error)

// BuildGetCurrentSession returns the most recent session and whether it is
// still active, i.e. whether the next logged match would join it.
func BuildGetCurrentSession(getSessions GetSessions, nowFunc func() time.Time) GetCurrentSession {
	return func(ctx context.Context) (CurrentSession, error) {
		sessions, err := getSessions(ctx)
		if err != nil {
			return CurrentSession{}, fmt.Errorf("failed to get sessions: %w", err)
		}

		if len(sessions) == 0 {
			return CurrentSession{Session: nil, IsActive: false}, nil
		}

		// Sessions are ordered most recent first
		latest := sessions[0]

		return CurrentSession{
			Session:  &latest,
			IsActive: nowFunc().Sub(latest.End) <= domain.SessionGap,
		}, nil
	}
}
