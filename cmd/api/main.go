// Copyright (c) 2026 Kalauz. All rights reserved.
// Author: balint.elekes.dev@gmail.com

// Command api is the entry point for the Kalauz HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/api"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/category"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/facet"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/discovery"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/library/favorite"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/config"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/migration"
	pgstore "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/postgres"
	redisstore "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/redis"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/sec"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/settlement"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/stats"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Kalauz] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context outlives startup; it owns the rate limiter cleanup
	// goroutine and other server-lifetime background work.
	rootCtx := context.Background()

	// Startup gets a 30s deadline so misconfiguration is caught quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewPostgresSessionRepository(pool)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc, log)

	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	placeService := place.NewService(place.NewPostgresRepository(pool), log)
	facetService := facet.NewService(facet.NewPostgresRepository(pool), log)
	statsService := stats.NewService(stats.NewPostgresRepository(pool), log)

	discoveryService := discovery.NewService(categoryService, facetService, placeService, statsService, log)
	favoriteService := favorite.NewService(favorite.NewPostgresRepository(pool), placeService, log)

	settlementDirectory := settlement.NewDirectory(cfg.SettlementSourceURL, cfg.SettlementFetchTimeout, rdb, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Category:   category.NewHandler(categoryService),
		Place:      place.NewHandler(placeService),
		Facet:      facet.NewHandler(facetService),
		Discovery:  discovery.NewHandler(discoveryService),
		Settlement: settlement.NewHandler(settlementDirectory),
		Favorite:   favorite.NewHandler(favoriteService),
		Stats:      stats.NewHandler(statsService),
	}

	server := api.NewServer(rootCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
