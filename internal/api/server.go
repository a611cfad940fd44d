// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/gstone/internal/core/category"
	"github.com/taibuivan/gstone/internal/core/company"
	"github.com/taibuivan/gstone/internal/core/contact"
	"github.com/taibuivan/gstone/internal/core/gallery"
	"github.com/taibuivan/gstone/internal/core/product"
	"github.com/taibuivan/gstone/internal/core/section"
	"github.com/taibuivan/gstone/internal/core/slider"
	"github.com/taibuivan/gstone/internal/platform/config"
	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/upload"
	"github.com/taibuivan/gstone/internal/users/account"
	"github.com/taibuivan/gstone/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It answers 200 while the process is up.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It answers 200 when every dependency is healthy.
	Readiness http.HandlerFunc

	// Files serves locally stored uploads under /uploads/. Nil for object storage.
	Files http.Handler

	Auth     *auth.Handler
	Accounts *account.Handler

	Categories *category.Handler
	Companies  *company.Handler
	Products   *product.Handler
	Gallery    *gallery.Handler
	Sliders    *slider.Handler
	Sections   *section.Handler
	Contacts   *contact.Handler
	Uploads    *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, h)

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

// NewRouter builds the routing tree without binding a listener.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	if h.Files != nil {
		r.Handle(constants.UploadURLPrefix+"*", h.Files)
	}

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)
		api.Route("/accounts", h.Accounts.RegisterRoutes)

		api.Route("/categories", h.Categories.RegisterRoutes)
		api.Route("/companies", h.Companies.RegisterRoutes)
		api.Route("/products", h.Products.RegisterRoutes)
		api.Route("/gallery-categories", h.Gallery.RegisterCategoryRoutes)
		api.Route("/gallery-items", h.Gallery.RegisterItemRoutes)
		api.Route("/sliders", h.Sliders.RegisterRoutes)
		api.Route("/sections", h.Sections.RegisterRoutes)
		api.Route("/contacts", h.Contacts.RegisterRoutes)
		api.Route("/uploads", h.Uploads.RegisterRoutes)
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
