package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/smashlog/smashlog/internal/adapters/cache"
	"github.com/smashlog/smashlog/internal/adapters/database"
	"github.com/smashlog/smashlog/internal/adapters/matchrepository"
	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/config"
	"github.com/smashlog/smashlog/internal/domain"
	"github.com/smashlog/smashlog/internal/logging"
	"github.com/smashlog/smashlog/internal/ports"
	"github.com/smashlog/smashlog/internal/reporting"
	"github.com/smashlog/smashlog/internal/telemetry"
	"github.com/google/uuid"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "smashlog.app"
const STAGING_DOMAIN_SUFFIX = "smashlog.pages.dev"

func main() {
	ctx := context.Background()

	instanceID := uuid.New().String()
	logger := slog.New(
		logging.NewTracingLogHandler(slog.NewJSONHandler(os.Stdout, nil)),
	).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	otelShutdown, err := telemetry.SetupOTelSDK(ctx, "smashlog")
	if err != nil {
		fail("Failed to set up OpenTelemetry SDK", "error", err.Error())
	}
	defer func() {
		err := otelShutdown(context.Background())
		if err != nil {
			logger.Error("Failed to shut down OpenTelemetry SDK", "error", err.Error())
		}
	}()

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	var matchRepo matchrepository.MatchRepository
	if config.IsDevelopment() && config.DBHost() == "" {
		matchRepo = matchrepository.NewInMemoryMatchRepository()
		logger.Info("Initialized in-memory MatchRepository")
	} else {
		logger.Info("Initializing database connection")
		db, err := database.NewConfiguredPostgresDatabase(config)
		if err != nil {
			fail("Failed to initialize database connection", "error", err.Error())
		}
		logger.Info("Initialized database connection")

		repositorySchemaName := database.GetSchemaName(!config.IsProduction())

		err = database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(ctx, repositorySchemaName)
		if err != nil {
			fail("Failed to migrate database", "error", err.Error())
		}

		matchRepo = matchrepository.NewPostgresMatchRepository(db, repositorySchemaName)
		logger.Info("Initialized PostgresMatchRepository")
	}

	players := domain.Players{
		One: config.PlayerOne(),
		Two: config.PlayerTwo(),
	}

	sessionCache := cache.NewTTLCache[[]domain.Session](1 * time.Minute)

	getSessions := app.BuildGetSessionsWithCache(
		sessionCache,
		app.BuildGetSessions(matchRepo, players),
	)
	getTimeline := app.BuildGetTimeline(getSessions)
	getChart := app.BuildGetChart(getTimeline, app.ShortDateLabel)
	getCurrentSession := app.BuildGetCurrentSession(getSessions, time.Now)
	getSessionDetail := app.BuildGetSessionDetail(matchRepo, players)
	logMatch := app.BuildLogMatch(matchRepo, players, time.Now)

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	http.HandleFunc(
		"OPTIONS /api/sessions",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions",
		ports.MakeGetSessionsHandler(
			getSessions,
			allowedOrigins,
			logger.With("port", "sessions"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/sessions/timeline",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions/timeline",
		ports.MakeGetTimelineHandler(
			getTimeline,
			allowedOrigins,
			logger.With("port", "timeline"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/sessions/chart",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions/chart",
		ports.MakeGetChartHandler(
			getChart,
			allowedOrigins,
			logger.With("port", "chart"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/sessions/chart/point",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions/chart/point",
		ports.MakeDescribePointHandler(
			getChart,
			players,
			allowedOrigins,
			logger.With("port", "chartpoint"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/sessions/current",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions/current",
		ports.MakeGetCurrentSessionHandler(
			getCurrentSession,
			allowedOrigins,
			logger.With("port", "currentsession"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/sessions/{session_id}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /api/sessions/{session_id}",
		ports.MakeGetSessionDetailHandler(
			getSessionDetail,
			allowedOrigins,
			logger.With("port", "sessiondetail"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /api/matches",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"POST /api/matches",
		ports.MakeLogMatchHandler(
			logMatch,
			allowedOrigins,
			logger.With("port", "logmatch"),
			sentryMiddleware,
		),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
