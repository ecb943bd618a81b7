package matchrepository

import (
	"context"
	"fmt"

	"github.com/smashlog/smashlog/internal/domain"
)

type MatchRepository interface {
	StoreMatch(ctx context.Context, match *domain.Match) error
	GetMatches(ctx context.Context) ([]domain.Match, error)
}

// StubMatchRepository implements MatchRepository by failing every call.
// Embed it in test mocks so they only have to implement the methods under
// test.
type StubMatchRepository struct{}

func (s *StubMatchRepository) StoreMatch(ctx context.Context, match *domain.Match) error {
	return fmt.Errorf("StoreMatch not implemented")
}

func (s *StubMatchRepository) GetMatches(ctx context.Context) ([]domain.Match, error) {
	return nil, fmt.Errorf("GetMatches not implemented")
}

var _ MatchRepository = &StubMatchRepository{}
