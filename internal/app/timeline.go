package app

import (
	"math"
	"time"

	"github.com/smashlog/smashlog/internal/domain"
)

// DateLabeler renders a timestamp for display. Injected so the numeric
// pipeline stays independent of locale and calendar concerns.
type DateLabeler func(t time.Time) string

// ShortDateLabel renders axis labels like "Jan 2". The year is intentionally
// omitted; it only appears in the per-point summary.
func ShortDateLabel(t time.Time) string {
	return t.Format("Jan 2")
}

// FullDateLabel renders dates like "January 2, 2006" for point summaries.
func FullDateLabel(t time.Time) string {
	return t.Format("January 2, 2006")
}

// NormalizeTimeline converts timeline points into the two parallel series
// consumed by the chart: one display label and one raw game count per point.
func NormalizeTimeline(points []domain.TimelinePoint, label DateLabeler) ([]string, []int) {
	labels := make([]string, 0, len(points))
	counts := make([]int, 0, len(points))
	for i := range points {
		labels = append(labels, label(points[i].StartedAt))
		counts = append(counts, points[i].GameCount)
	}
	return labels, counts
}

const maxTrendWindow = 5

// trendWindowSize returns the adaptive window size ceil(n/10), clamped to
// [1, maxTrendWindow]. Short histories get a window of 1 (trend == raw
// counts), long histories cap at 5 so the line never over-smooths.
func trendWindowSize(n int) int {
	w := (n + 9) / 10
	if w < 1 {
		w = 1
	}
	if w > maxTrendWindow {
		w = maxTrendWindow
	}
	return w
}

// ComputeRollingTrend computes a centered moving average over counts with an
// adaptive window, returning one value per input element rounded to one
// decimal place (half away from zero).
//
// The window spans [i - floor(w/2), i + ceil(w/2)) and shrinks at the series
// edges instead of padding with synthetic values. The floor/ceil asymmetry is
// deliberate and observable in the output near the edges; keep it.
func ComputeRollingTrend(counts []int) []float64 {
	n := len(counts)
	if n == 0 {
		return []float64{}
	}

	w := trendWindowSize(n)

	trend := make([]float64, n)
	for i := range counts {
		start := max(0, i-w/2)
		end := min(n, i+(w+1)/2)

		// The window always contains the element at i itself
		sum := 0
		for _, count := range counts[start:end] {
			sum += count
		}
		trend[i] = roundToTenth(float64(sum) / float64(end-start))
	}

	return trend
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
