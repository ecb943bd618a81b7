package app

import (
	"strconv"

	"github.com/smashlog/smashlog/internal/domain"
)

// PlayerSummary is one player's share of a timeline point.
type PlayerSummary struct {
	Name    string
	Wins    int
	WinRate string
}

// PointSummary is the detail shown when a plotted point is selected.
type PointSummary struct {
	SessionID       string
	Date            string
	Games           int
	Trend           float64
	PlayerOne       PlayerSummary
	PlayerTwo       PlayerSummary
	DurationMinutes int
}

// DescribePoint builds the summary for one plotted point. index must be in
// [0, len(points)) and trend must be the series computed from the same
// points; both are caller preconditions.
func DescribePoint(
	points []domain.TimelinePoint,
	trend []float64,
	index int,
	players domain.Players,
	label DateLabeler,
) PointSummary {
	point := &points[index]

	return PointSummary{
		SessionID: point.SessionID,
		Date:      label(point.StartedAt),
		Games:     point.GameCount,
		Trend:     trend[index],
		PlayerOne: PlayerSummary{
			Name:    players.One,
			Wins:    point.WinsOne,
			WinRate: FormatWinRate(point.WinsOne, point.GameCount),
		},
		PlayerTwo: PlayerSummary{
			Name:    players.Two,
			Wins:    point.WinsTwo,
			WinRate: FormatWinRate(point.WinsTwo, point.GameCount),
		},
		DurationMinutes: point.DurationMinutes,
	}
}

// FormatWinRate renders wins/games as a percentage with one decimal place.
// A session with zero games reports "0.0" rather than dividing by zero.
func FormatWinRate(wins, games int) string {
	if games == 0 {
		return "0.0"
	}
	rate := float64(wins) / float64(games) * 100
	return strconv.FormatFloat(roundToTenth(rate), 'f', 1, 64)
}
