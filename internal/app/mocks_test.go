package app_test

import (
	"context"

	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/domain"
)

type mockMatchRepository struct {
	matchrepository.StubMatchRepository
	getMatches func(ctx context.Context) ([]domain.Match, error)
	storeMatch func(ctx context.Context, match *domain.Match) error
}

func (m *mockMatchRepository) GetMatches(ctx context.Context) ([]domain.Match, error) {
	if m.getMatches != nil {
		return m.getMatches(ctx)
	}
	return m.StubMatchRepository.GetMatches(ctx)
}

func (m *mockMatchRepository) StoreMatch(ctx context.Context, match *domain.Match) error {
	if m.storeMatch != nil {
		return m.storeMatch(ctx, match)
	}
	return m.StubMatchRepository.StoreMatch(ctx, match)
}

var _ matchrepository.MatchRepository = &mockMatchRepository{}
