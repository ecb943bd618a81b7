package app

import (
	"context"
	"fmt"

	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/domain"
)

type GetSessionDetail = func(ctx context.Context, sessionID string) (domain.SessionDetail, error)

// BuildGetSessionDetail derives the per-session breakdown (character usage,
// matchup results) for one session, addressed by its id.
func BuildGetSessionDetail(
	repo matchrepository.MatchRepository,
	players domain.Players,
) GetSessionDetail {
	return func(ctx context.Context, sessionID string) (domain.SessionDetail, error) {
		matches, err := repo.GetMatches(ctx)
		if err != nil {
			// NOTE: MatchRepository implementations handle their own error reporting
			return domain.SessionDetail{}, fmt.Errorf("failed to get matches: %w", err)
		}

		detail, err := domain.ComputeSessionDetail(matches, players, sessionID)
		if err != nil {
			return domain.SessionDetail{}, fmt.Errorf("failed to compute session detail: %w", err)
		}

		return detail, nil
	}
}
