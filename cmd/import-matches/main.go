package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/smashlog/smashlog/internal/adapters/database"
	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/config"
	"github.com/smashlog/smashlog/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// Expected CSV columns, with a header row:
// datetime,character_one,character_two,winner,stocks_remaining
func parseRecord(record []string) (domain.Match, error) {
	if len(record) < 4 {
		return domain.Match{}, fmt.Errorf("expected at least 4 columns, got %d", len(record))
	}

	playedAt, err := time.ParseInLocation(timestampLayout, record[0], time.Local)
	if err != nil {
		return domain.Match{}, fmt.Errorf("failed to parse datetime %q: %w", record[0], err)
	}

	match := domain.Match{
		PlayedAt:     playedAt,
		CharacterOne: record[1],
		CharacterTwo: record[2],
		Winner:       record[3],
	}

	if len(record) >= 5 && record[4] != "" {
		stocks, err := strconv.Atoi(record[4])
		if err != nil {
			return domain.Match{}, fmt.Errorf("failed to parse stocks_remaining %q: %w", record[4], err)
		}
		match.StocksRemaining = &stocks
	}

	return match, nil
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		log.Fatal("No CSV file provided")
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	conf, err := config.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConfiguredPostgresDatabase(conf)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	schemaName := database.GetSchemaName(!conf.IsProduction())

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	err = database.NewDatabaseMigrator(db, logger).Migrate(ctx, schemaName)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repo := matchrepository.NewPostgresMatchRepository(db, schemaName)

	reader := csv.NewReader(file)

	// Header row
	_, err = reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV record: %v", err)
		}

		match, err := parseRecord(record)
		if err != nil {
			log.Fatalf("Failed to parse record %d: %v", imported+1, err)
		}

		err = repo.StoreMatch(ctx, &match)
		if err != nil {
			log.Fatalf("Failed to store match %d: %v", imported+1, err)
		}
		imported++
	}

	log.Printf("Imported %d matches", imported)
}
