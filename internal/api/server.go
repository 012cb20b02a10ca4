// Copyright (c) 2026 Kalauz. All rights reserved.
// Author: balint.elekes.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/category"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/facet"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/discovery"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/library/favorite"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/config"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/middleware"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/settlement"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/stats"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/users/auth"
)

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, register, refresh).
	Auth *auth.Handler

	// Category manages the browsable directory sections.
	Category *category.Handler

	// Place manages the directory entries themselves.
	Place *place.Handler

	// Facet manages cross-cutting category groupings.
	Facet *facet.Handler

	// Discovery serves the ranked place search.
	Discovery *discovery.Handler

	// Settlement serves the settlement name directory.
	Settlement *settlement.Handler

	// Favorite manages per-user bookmarks.
	Favorite *favorite.Handler

	// Stats ingests usage events and serves admin reports.
	Stats *stats.Handler
}

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.Consent())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/categories", h.Category.RegisterRoutes)
		api.Route("/places", h.Place.RegisterRoutes)
		api.Route("/facets", h.Facet.RegisterRoutes)
		api.Route("/discover", h.Discovery.RegisterRoutes)
		api.Route("/settlements", h.Settlement.RegisterRoutes)
		api.Route("/favorites", h.Favorite.RegisterRoutes)
		api.Route("/stats", h.Stats.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
