package app

import (
	"context"
	"fmt"
	"time"

	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/reporting"
)

type LogMatch = func(ctx context.Context, match domain.Match) (domain.Match, error)

// BuildLogMatch validates and persists a single match. A zero PlayedAt is
// filled in with the current time, matching how matches are logged live.
func BuildLogMatch(
	repo matchrepository.MatchRepository,
	players domain.Players,
	nowFunc func() time.Time,
) LogMatch {
	return func(ctx context.Context, match domain.Match) (domain.Match, error) {
		if !players.Includes(match.Winner) {
			err := fmt.Errorf("%w: %q", domain.ErrUnknownWinner, match.Winner)
			reporting.Report(ctx, err, map[string]string{
				"winner": match.Winner,
			})
			return domain.Match{}, err
		}

		if match.PlayedAt.IsZero() {
			match.PlayedAt = nowFunc()
		}

		err := repo.StoreMatch(ctx, &match)
		if err != nil {
			// NOTE: MatchRepository implementations handle their own error reporting
			return domain.Match{}, fmt.Errorf("failed to store match: %w", err)
		}

		return match, nil
	}
}
