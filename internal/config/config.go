package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

const defaultPort = "8080"

type Config struct {
	dBHost     string
	dBPassword string
	dBUsername string
	sentryDSN  string
	playerOne  string
	playerTwo  string
	port       string
	env        environment
}

func (c *Config) DBHost() string {
	return c.dBHost
}

func (c *Config) DBPassword() string {
	return c.dBPassword
}

func (c *Config) DBUsername() string {
	return c.dBUsername
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) PlayerOne() string {
	return c.playerOne
}

func (c *Config) PlayerTwo() string {
	return c.playerTwo
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, players: %s/%s, ...}", string(c.env), c.playerOne, c.playerTwo)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("SMASHLOG_ENVIRONMENT")
	if !ok {
		return missingKey("SMASHLOG_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: SMASHLOG_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}

	dbHost := os.Getenv("DB_HOST")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbUsername := os.Getenv("DB_USERNAME")
	sentryDSN := os.Getenv("SENTRY_DSN")
	playerOne := os.Getenv("SMASHLOG_PLAYER_ONE")
	playerTwo := os.Getenv("SMASHLOG_PLAYER_TWO")
	port := os.Getenv("PORT")

	if env == production || env == staging {
		if dbHost == "" {
			return missingKey("DB_HOST")
		}
		if dbUsername == "" {
			return missingKey("DB_USERNAME")
		}
		if dbPassword == "" {
			return missingKey("DB_PASSWORD")
		}
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
		if playerOne == "" {
			return missingKey("SMASHLOG_PLAYER_ONE")
		}
		if playerTwo == "" {
			return missingKey("SMASHLOG_PLAYER_TWO")
		}
	}

	if playerOne == "" {
		playerOne = "Player One"
	}
	if playerTwo == "" {
		playerTwo = "Player Two"
	}
	if playerOne == playerTwo {
		return Config{}, fmt.Errorf("%w: SMASHLOG_PLAYER_ONE and SMASHLOG_PLAYER_TWO must differ", ErrInvalidValue)
	}
	if port == "" {
		port = defaultPort
	}

	return Config{
		dBHost:     dbHost,
		dBPassword: dbPassword,
		dBUsername: dbUsername,
		sentryDSN:  sentryDSN,
		playerOne:  playerOne,
		playerTwo:  playerTwo,
		port:       port,
		env:        env,
	}, nil
}
