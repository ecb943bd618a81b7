package domain

import (
	"cmp"
	"slices"
)

// MatchupStats aggregates the games played with one character pairing within
// a session.
type MatchupStats struct {
	CharacterOne string
	CharacterTwo string
	Games        int
	WinsOne      int
	WinsTwo      int
}

// SessionDetail is the per-session breakdown behind the session list entry:
// character usage per player and per-matchup results.
type SessionDetail struct {
	Session Session

	// Character name -> games played with it in this session
	CharactersOne map[string]int
	CharactersTwo map[string]int

	// Ordered by character pair for stable output
	Matchups []MatchupStats
}

// ComputeSessionDetail derives the detailed breakdown for the session with
// the given id. Returns ErrSessionNotFound when no session starts in the
// hour the id names.
func ComputeSessionDetail(matches []Match, players Players, sessionID string) (SessionDetail, error) {
	for _, sessionMatches := range splitSessions(matches) {
		if SessionID(sessionMatches[0].PlayedAt) != sessionID {
			continue
		}
		return summarizeSessionDetail(sessionMatches, players), nil
	}

	return SessionDetail{}, ErrSessionNotFound
}

// NOTE: matches must be non-empty and sorted by PlayedAt ascending
func summarizeSessionDetail(matches []Match, players Players) SessionDetail {
	detail := SessionDetail{
		Session:       summarizeSession(matches, players),
		CharactersOne: map[string]int{},
		CharactersTwo: map[string]int{},
	}

	type matchupKey struct {
		characterOne string
		characterTwo string
	}
	matchups := map[matchupKey]*MatchupStats{}

	for _, match := range matches {
		detail.CharactersOne[match.CharacterOne]++
		detail.CharactersTwo[match.CharacterTwo]++

		key := matchupKey{characterOne: match.CharacterOne, characterTwo: match.CharacterTwo}
		stats, ok := matchups[key]
		if !ok {
			stats = &MatchupStats{
				CharacterOne: match.CharacterOne,
				CharacterTwo: match.CharacterTwo,
			}
			matchups[key] = stats
		}

		stats.Games++
		switch match.Winner {
		case players.One:
			stats.WinsOne++
		case players.Two:
			stats.WinsTwo++
		}
	}

	for _, stats := range matchups {
		detail.Matchups = append(detail.Matchups, *stats)
	}
	slices.SortFunc(detail.Matchups, func(a, b MatchupStats) int {
		if c := cmp.Compare(a.CharacterOne, b.CharacterOne); c != 0 {
			return c
		}
		return cmp.Compare(a.CharacterTwo, b.CharacterTwo)
	})

	return detail
}
