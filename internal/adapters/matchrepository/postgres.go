package matchrepository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/reporting"
)

type PostgresMatchRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresMatchRepository(db *sqlx.DB, schema string) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db, schema: schema}
}

type dbMatch struct {
	ID              string        `db:"id"`
	PlayedAt        time.Time     `db:"played_at"`
	Winner          string        `db:"winner"`
	CharacterOne    string        `db:"character_one"`
	CharacterTwo    string        `db:"character_two"`
	StocksRemaining sql.NullInt64 `db:"stocks_remaining"`
}

func matchToDBMatch(match *domain.Match) dbMatch {
	stocks := sql.NullInt64{}
	if match.StocksRemaining != nil {
		stocks = sql.NullInt64{Int64: int64(*match.StocksRemaining), Valid: true}
	}

	return dbMatch{
		ID:              match.ID,
		PlayedAt:        match.PlayedAt,
		Winner:          match.Winner,
		CharacterOne:    match.CharacterOne,
		CharacterTwo:    match.CharacterTwo,
		StocksRemaining: stocks,
	}
}

func dbMatchToMatch(row dbMatch) domain.Match {
	var stocks *int
	if row.StocksRemaining.Valid {
		value := int(row.StocksRemaining.Int64)
		stocks = &value
	}

	return domain.Match{
		ID:              row.ID,
		PlayedAt:        row.PlayedAt,
		Winner:          row.Winner,
		CharacterOne:    row.CharacterOne,
		CharacterTwo:    row.CharacterTwo,
		StocksRemaining: stocks,
	}
}

func (p *PostgresMatchRepository) StoreMatch(ctx context.Context, match *domain.Match) error {
	if match == nil {
		err := fmt.Errorf("match is nil")
		reporting.Report(ctx, err)
		return err
	}

	if match.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			err = fmt.Errorf("failed to generate match id: %w", err)
			reporting.Report(ctx, err)
			return err
		}
		match.ID = id.String()
	}

	txx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err = fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"matchID": match.ID,
		})
		return err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err = fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"matchID": match.ID,
		})
		return err
	}

	_, err = txx.NamedExecContext(ctx, `
		INSERT INTO matches (id, played_at, winner, character_one, character_two, stocks_remaining)
		VALUES (:id, :played_at, :winner, :character_one, :character_two, :stocks_remaining)`,
		matchToDBMatch(match),
	)
	if err != nil {
		err = fmt.Errorf("failed to insert match: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"matchID": match.ID,
		})
		return err
	}

	err = txx.Commit()
	if err != nil {
		err = fmt.Errorf("failed to commit transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"matchID": match.ID,
		})
		return err
	}

	return nil
}

func (p *PostgresMatchRepository) GetMatches(ctx context.Context) ([]domain.Match, error) {
	txx, err := p.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		err = fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err = fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	rows := []dbMatch{}
	err = txx.SelectContext(ctx, &rows, `
		SELECT id, played_at, winner, character_one, character_two, stocks_remaining
		FROM matches
		ORDER BY played_at ASC`,
	)
	if err != nil {
		err = fmt.Errorf("failed to select matches: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	matches := make([]domain.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, dbMatchToMatch(row))
	}

	return matches, nil
}

var _ MatchRepository = &PostgresMatchRepository{}
