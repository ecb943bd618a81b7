package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/smashlog/smashlog/internal/domain"
)

type GetTimeline = func(ctx context.Context) ([]domain.TimelinePoint, error)

// BuildGetTimeline derives the timeline feed: one point per session, ordered
// by start time ascending for plotting.
func BuildGetTimeline(getSessions GetSessions) GetTimeline {
	return func(ctx context.Context) ([]domain.TimelinePoint, error) {
		sessions, err := getSessions(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get sessions: %w", err)
		}

		// getSessions may return a shared (cached) slice; never sort it in place
		sorted := slices.Clone(sessions)
		slices.SortStableFunc(sorted, func(a, b domain.Session) int {
			return a.Start.Compare(b.Start)
		})

		return domain.TimelinePointsFromSessions(sorted), nil
	}
}
