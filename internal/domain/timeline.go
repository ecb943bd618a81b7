package domain

import "time"

// TimelinePoint is one session's data reduced to the fields needed for the
// activity chart.
type TimelinePoint struct {
	SessionID       string
	StartedAt       time.Time
	GameCount       int
	WinsOne         int
	WinsTwo         int
	DurationMinutes int
}

// TimelinePointsFromSessions returns one point per session. The caller is
// expected to pass sessions sorted by start time ascending; points keep the
// input order.
func TimelinePointsFromSessions(sessions []Session) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]
		points = append(points, TimelinePoint{
			SessionID:       session.ID,
			StartedAt:       session.Start,
			GameCount:       session.Games,
			WinsOne:         session.WinsOne,
			WinsTwo:         session.WinsTwo,
			DurationMinutes: session.DurationMinutes(),
		})
	}
	return points
}
