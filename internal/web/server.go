// Package web serves the read-only reports API over the loaded tables.
// It issues aggregate queries only; all writes happen in the loader or
// the mutation surface, never here.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"restaurant-loader/internal/config"
	"restaurant-loader/internal/store"
	"restaurant-loader/internal/web/middleware"
)

// Server is the HTTP server for the reports API.
type Server struct {
	store  *store.Store
	router *chi.Mux
	server *http.Server
}

// NewServer creates a reports server over an open store.
func NewServer(st *store.Store, cfg *config.Config) *Server {
	s := &Server{
		store:  st,
		router: chi.NewRouter(),
	}
	s.setupMiddleware(cfg)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Reports.ListenAddr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Reports.ReadTimeout,
		WriteTimeout: cfg.Reports.WriteTimeout,
		IdleTimeout:  cfg.Reports.IdleTimeout,
	}
	return s
}

func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(cfg.Reports.RequestTimeout))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/reports", func(r chi.Router) {
		r.Get("/orders", s.handleRecentOrders)
		r.Get("/menu", s.handleMenuPrices)
		r.Get("/employees", s.handleEmployeeStats)
		r.Get("/headcount", s.handleEmployeeDistribution)
		r.Get("/inventory", s.handleInventoryLevels)
	})
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
