package domain

import "time"

// Match is a single logged game between the two tracked players.
type Match struct {
	ID       string
	PlayedAt time.Time

	// Winner is the name of the winning player, matching one of the
	// configured player names.
	Winner string

	CharacterOne string
	CharacterTwo string

	// StocksRemaining is nil when the game was logged without a stock count
	StocksRemaining *int
}

// Players holds the two configured player names. All win attribution is done
// by comparing Match.Winner against these.
type Players struct {
	One string
	Two string
}

func (p Players) Includes(name string) bool {
	return name == p.One || name == p.Two
}
