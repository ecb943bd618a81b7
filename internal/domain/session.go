package domain

import "time"

// Session is one contiguous block of play, derived by grouping matches
// separated by less than SessionGap.
type Session struct {
	ID      string
	Start   time.Time
	End     time.Time
	Games   int
	WinsOne int
	WinsTwo int
}

func (s *Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// DurationMinutes returns the session length in whole minutes, truncated.
func (s *Session) DurationMinutes() int {
	return int(s.Duration().Minutes())
}
