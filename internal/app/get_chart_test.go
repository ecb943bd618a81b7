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

func TestBuildGetChart(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC)

	t.Run("series stay aligned with the timeline", func(t *testing.T) {
		t.Parallel()
		timeline := []domain.TimelinePoint{
			{SessionID: "2024-03-09-19", StartedAt: start, GameCount: 4},
			{SessionID: "2024-03-10-12", StartedAt: start.Add(17 * time.Hour), GameCount: 8},
		}
		getChart := app.BuildGetChart(func(ctx context.Context) ([]domain.TimelinePoint, error) {
			return timeline, nil
		}, app.ShortDateLabel)

		chart, err := getChart(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"Mar 9", "Mar 10"}, chart.Labels)
		require.Equal(t, []int{4, 8}, chart.Games)
		// Two points -> window of one, so the trend is the raw counts
		require.Equal(t, []float64{4, 8}, chart.Trend)
		require.Equal(t, timeline, chart.Points)
	})

	t.Run("empty timeline gives empty series", func(t *testing.T) {
		t.Parallel()
		getChart := app.BuildGetChart(func(ctx context.Context) ([]domain.TimelinePoint, error) {
			return []domain.TimelinePoint{}, nil
		}, app.ShortDateLabel)

		chart, err := getChart(context.Background())
		require.NoError(t, err)
		require.Empty(t, chart.Labels)
		require.Empty(t, chart.Games)
		require.Empty(t, chart.Trend)
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()
		timelineErr := errors.New("boom")
		getChart := app.BuildGetChart(func(ctx context.Context) ([]domain.TimelinePoint, error) {
			return nil, timelineErr
		}, app.ShortDateLabel)

		_, err := getChart(context.Background())
		require.ErrorIs(t, err, timelineErr)
	})
}
