package matchrepository_test

import (
	"context"
	"testing"
	"time"

	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMatchRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC)

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		matches, err := repo.GetMatches(ctx)
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("assigns ids to stored matches", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		match := domain.Match{PlayedAt: start, Winner: "Alice"}
		err := repo.StoreMatch(ctx, &match)
		require.NoError(t, err)
		require.NotEmpty(t, match.ID)

		matches, err := repo.GetMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, match.ID, matches[0].ID)
	})

	t.Run("keeps a provided id", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		match := domain.Match{ID: "existing-id", PlayedAt: start, Winner: "Alice"}
		err := repo.StoreMatch(ctx, &match)
		require.NoError(t, err)
		require.Equal(t, "existing-id", match.ID)
	})

	t.Run("rejects nil matches", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		err := repo.StoreMatch(ctx, nil)
		require.Error(t, err)
	})

	t.Run("returns matches ordered by played_at", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		for _, playedAt := range []time.Time{start.Add(2 * time.Hour), start, start.Add(time.Hour)} {
			match := domain.Match{PlayedAt: playedAt, Winner: "Alice"}
			require.NoError(t, repo.StoreMatch(ctx, &match))
		}

		matches, err := repo.GetMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		require.Equal(t, start, matches[0].PlayedAt)
		require.Equal(t, start.Add(time.Hour), matches[1].PlayedAt)
		require.Equal(t, start.Add(2*time.Hour), matches[2].PlayedAt)
	})

	t.Run("stored matches are not aliased by later mutation", func(t *testing.T) {
		t.Parallel()
		repo := matchrepository.NewInMemoryMatchRepository()

		match := domain.Match{PlayedAt: start, Winner: "Alice"}
		require.NoError(t, repo.StoreMatch(ctx, &match))

		match.Winner = "Bob"

		matches, err := repo.GetMatches(ctx)
		require.NoError(t, err)
		require.Equal(t, "Alice", matches[0].Winner)
	})
}
