package app

import (
	"context"
	"fmt"

	"github.com/smashlog/smashlog/internal/domain"
)

// ChartData holds the three aligned series handed to the rendering sink,
// plus the underlying points for per-point summaries.
type ChartData struct {
	Labels []string
	Games  []int
	Trend  []float64
	Points []domain.TimelinePoint
}

type GetChart = func(ctx context.Context) (ChartData, error)

// BuildGetChart derives the chart feed from the timeline: display labels,
// raw game counts and the smoothed trend series.
func BuildGetChart(getTimeline GetTimeline, label DateLabeler) GetChart {
	return func(ctx context.Context) (ChartData, error) {
		points, err := getTimeline(ctx)
		if err != nil {
			return ChartData{}, fmt.Errorf("failed to get timeline: %w", err)
		}

		labels, counts := NormalizeTimeline(points, label)

		return ChartData{
			Labels: labels,
			Games:  counts,
			Trend:  ComputeRollingTrend(counts),
			Points: points,
		}, nil
	}
}
