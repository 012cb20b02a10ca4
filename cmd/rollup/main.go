// Copyright (c) 2026 Kalauz. All rights reserved.
// Author: balint.elekes.dev@gmail.com

// Command rollup is the nightly maintenance job.
//
// It aggregates the raw usage event stream into the daily statistics
// tables and purges expired auth sessions, then exits. Intended to run
// from cron shortly after midnight Budapest time.
//
// # Environment
//
//   - ROLLUP_DATE: optional YYYY-MM-DD day to (re)aggregate.
//     Defaults to yesterday in the report timezone.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/config"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
	pgstore "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/postgres"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/stats"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/users/auth"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName), slog.String("job", "rollup"))
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	runCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(runCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// ── 1. Daily statistics rollup ────────────────────────────────────────
	statsService := stats.NewService(stats.NewPostgresRepository(pool), log)

	day, err := statsService.AggregateDay(runCtx, os.Getenv("ROLLUP_DATE"))
	must(log, err, "aggregate daily statistics")
	log.Info("rollup_completed", slog.String("day", day))

	// ── 2. Session housekeeping ───────────────────────────────────────────
	sessionRepository := auth.NewPostgresSessionRepository(pool)
	if err := sessionRepository.DeleteExpired(runCtx); err != nil {
		// Housekeeping failure shouldn't fail the whole job; the next run
		// picks the rows up again.
		log.Error("session_cleanup_failed", slog.Any("error", err))
	} else {
		log.Info("expired_sessions_purged")
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("job failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
