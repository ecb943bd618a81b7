package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/smashlog/smashlog/internal/adapters/cache"
	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/domain"
)

type GetSessions = func(ctx context.Context) ([]domain.Session, error)

// BuildGetSessions derives the session list from all stored matches, most
// recent session first. The whole list is recomputed from scratch on every
// call; there is no incremental update.
func BuildGetSessions(
	repo matchrepository.MatchRepository,
	players domain.Players,
) GetSessions {
	return func(ctx context.Context) ([]domain.Session, error) {
		matches, err := repo.GetMatches(ctx)
		if err != nil {
			// NOTE: MatchRepository implementations handle their own error reporting
			return nil, fmt.Errorf("failed to get matches: %w", err)
		}

		sessions := domain.ComputeSessions(matches, players)

		slices.SortStableFunc(sessions, func(a, b domain.Session) int {
			return b.Start.Compare(a.Start)
		})

		return sessions, nil
	}
}

const sessionsCacheKey = "sessions"

// BuildGetSessionsWithCache wraps getSessions in a short-lived cache so a
// dashboard refresh does not recompute the list for every feed it fetches.
func BuildGetSessionsWithCache(
	sessionCache cache.Cache[[]domain.Session],
	getSessions GetSessions,
) GetSessions {
	return func(ctx context.Context) ([]domain.Session, error) {
		sessions, _, err := cache.GetOrCreate(ctx, sessionCache, sessionsCacheKey, func() ([]domain.Session, error) {
			return getSessions(ctx)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get sessions: %w", err)
		}
		return sessions, nil
	}
}
