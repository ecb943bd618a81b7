package ports

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ratelimiting"
	"github.com/smashlog/smashlog/internal/reporting"
)

// MakeGetChartHandler serves the three aligned chart series: labels, raw
// game counts and the smoothed trend.
func MakeGetChartHandler(
	getChart app.GetChart,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"chart",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		chart, err := getChart(ctx)
		if err != nil {
			// NOTE: GetChart implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get chart data")
			return
		}

		marshalled, err := ChartToResponseData(chart)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert chart to response: %w", err), map[string]string{
				"length": strconv.Itoa(len(chart.Games)),
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning chart data")

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}

// MakeDescribePointHandler serves the lazy per-point summary the chart shows
// on interaction with a plotted point. The point is addressed by its index
// into the chart series.
func MakeDescribePointHandler(
	getChart app.GetChart,
	players domain.Players,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := newFeedMiddleware(
		"chartpoint",
		allowedOrigins,
		rootLogger,
		sentryMiddleware,
		ratelimiting.RefillPerSecond(8),
		ratelimiting.BurstSize(160),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawIndex := r.URL.Query().Get("index")
		index, err := strconv.Atoi(rawIndex)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid point index")
			return
		}

		ctx = logging.AddMetaToContext(ctx, slog.Int("index", index))

		chart, err := getChart(ctx)
		if err != nil {
			// NOTE: GetChart implementations handle their own error reporting
			writeError(w, r, http.StatusInternalServerError, "Failed to get chart data")
			return
		}

		// Index validity is checked here at the boundary; the computation
		// itself assumes a valid index.
		if index < 0 || index >= len(chart.Points) {
			writeError(w, r, http.StatusNotFound, "Point index out of range")
			return
		}

		summary := app.DescribePoint(chart.Points, chart.Trend, index, players, app.FullDateLabel)

		marshalled, err := PointSummaryToResponseData(summary)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to convert point summary to response: %w", err), map[string]string{
				"index": strconv.Itoa(index),
			})
			writeError(w, r, http.StatusInternalServerError, "Failed to marshal response")
			return
		}

		logging.FromContext(ctx).Info("Returning point summary")

		writeJSON(w, http.StatusOK, marshalled)
	}

	return middleware(handler)
}
