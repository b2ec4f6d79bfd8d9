// Copyright (c) 2026 Folio. All rights reserved.

/*
Package api composes the middleware chain and the domain handlers into a
runnable [http.Server].

Route layout under /api/v1:

  - /developers: staff CRUD, derived projects, photos.
  - /projects:   project CRUD, resolved developers, pictures.
  - /news:       articles.
  - /upload/image and /uploads/{name}: generic uploads.
  - /config:     site flags for the frontend (key-gated).
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/folioworks/folio/internal/core/article"
	"github.com/folioworks/folio/internal/core/media"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/internal/core/team"
	"github.com/folioworks/folio/internal/platform/config"
	"github.com/folioworks/folio/internal/platform/constants"
	"github.com/folioworks/folio/internal/platform/middleware"
)

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the handler sets mounted by [NewServer].
type Handlers struct {
	Liveness  http.HandlerFunc
	Readiness http.HandlerFunc

	// SiteConfig serves GET /config. It is mounted behind Guard.
	SiteConfig http.HandlerFunc

	Staff    *staff.Handler
	Projects *project.Handler
	Articles *article.Handler
	Team     *team.Handler
	Media    *media.Handler

	// Guard protects every mutating route.
	Guard func(http.Handler) http.Handler
}

// NewServer builds the router with the full middleware chain.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.AllowedOriginSuffix))
	r.Use(chimw.CleanPath)

	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	r.Route(constants.APIPrefix, func(api chi.Router) {
		// Each prefix is routed once; sub-resources share its router.
		api.Route("/developers", func(r chi.Router) {
			h.Staff.RegisterRoutes(r)
			h.Team.RegisterStaffRoutes(r)
			h.Media.RegisterStaffRoutes(r)
		})
		api.Route("/projects", func(r chi.Router) {
			h.Projects.RegisterRoutes(r)
			h.Team.RegisterProjectRoutes(r)
			h.Media.RegisterProjectRoutes(r)
		})
		api.Route("/news", h.Articles.RegisterRoutes)
		h.Media.RegisterUploadRoutes(api)

		api.With(h.Guard).Get("/config", h.SiteConfig)
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

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server is closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
