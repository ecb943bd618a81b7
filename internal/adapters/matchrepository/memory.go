package matchrepository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/reporting"
)

// InMemoryMatchRepository keeps matches in memory. Used in development mode
// and in tests; data does not survive a restart.
type InMemoryMatchRepository struct {
	matches []domain.Match
	mutex   sync.Mutex
}

func NewInMemoryMatchRepository() *InMemoryMatchRepository {
	return &InMemoryMatchRepository{
		matches: []domain.Match{},
	}
}

func (m *InMemoryMatchRepository) StoreMatch(ctx context.Context, match *domain.Match) error {
	if match == nil {
		err := fmt.Errorf("match is nil")
		reporting.Report(ctx, err)
		return err
	}

	if match.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			err = fmt.Errorf("failed to generate match id: %w", err)
			reporting.Report(ctx, err)
			return err
		}
		match.ID = id.String()
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.matches = append(m.matches, *match)

	return nil
}

func (m *InMemoryMatchRepository) GetMatches(ctx context.Context) ([]domain.Match, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	matches := slices.Clone(m.matches)
	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		return a.PlayedAt.Compare(b.PlayedAt)
	})

	return matches, nil
}

var _ MatchRepository = &InMemoryMatchRepository{}
