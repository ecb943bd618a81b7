package domain

import (
	"slices"
	"time"
)

// SessionGap is the inactivity period that separates two sessions. A match
// played more than SessionGap after the previous one starts a new session.
const SessionGap = 4 * time.Hour

// SessionID derives the id for a session starting at the given time.
func SessionID(start time.Time) string {
	return start.Format("2006-01-02-15")
}

// ComputeSessions groups matches into sessions and aggregates per-session
// summaries. The input does not need to be sorted. Matches with a winner not
// in players count towards the game total but not towards either win count.
func ComputeSessions(matches []Match, players Players) []Session {
	if len(matches) == 0 {
		return []Session{}
	}

	sessions := []Session{}
	for _, sessionMatches := range splitSessions(matches) {
		sessions = append(sessions, summarizeSession(sessionMatches, players))
	}

	return sessions
}

// splitSessions sorts matches by PlayedAt and splits them into per-session
// groups wherever the gap between consecutive matches exceeds SessionGap.
// The input is not mutated; each group is non-empty and sorted ascending.
func splitSessions(matches []Match) [][]Match {
	if len(matches) == 0 {
		return nil
	}

	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b Match) int {
		return a.PlayedAt.Compare(b.PlayedAt)
	})

	groups := [][]Match{}

	sessionStartIndex := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].PlayedAt.Sub(sorted[i-1].PlayedAt) <= SessionGap {
			continue
		}

		groups = append(groups, sorted[sessionStartIndex:i])
		sessionStartIndex = i
	}

	return groups
}

// NOTE: matches must be non-empty and sorted by PlayedAt ascending
func summarizeSession(matches []Match, players Players) Session {
	session := Session{
		ID:    SessionID(matches[0].PlayedAt),
		Start: matches[0].PlayedAt,
		End:   matches[len(matches)-1].PlayedAt,
		Games: len(matches),
	}

	for _, match := range matches {
		switch match.Winner {
		case players.One:
			session.WinsOne++
		case players.Two:
			session.WinsTwo++
		}
	}

	return session
}
