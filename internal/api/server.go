// Package api wires the HTTP surface: router, handlers, middleware.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/settleup/settleup/internal/api/handlers"
	"github.com/settleup/settleup/internal/api/middleware"
	"github.com/settleup/settleup/internal/auth"
	"github.com/settleup/settleup/internal/cache"
	"github.com/settleup/settleup/internal/storage"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger

	store         storage.Store
	cache         cache.Cache
	jwtManager    *auth.JWTManager
	authenticator auth.Authenticator
}

// NewServer creates a new API server.
func NewServer(cfg Config, store storage.Store, c cache.Cache, jwtManager *auth.JWTManager, authenticator auth.Authenticator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:        cfg,
		router:        chi.NewRouter(),
		logger:        logger,
		store:         store,
		cache:         c,
		jwtManager:    jwtManager,
		authenticator: authenticator,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	corsConfig := middleware.DefaultCORSConfig()
	if len(s.config.AllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = s.config.AllowedOrigins
	}
	s.router.Use(middleware.CORS(corsConfig))
	s.router.Use(middleware.Logging(s.logger))
	s.router.Use(middleware.Metrics())
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler()
	s.router.Get("/health", healthHandler.ServeHTTP)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authHandler := handlers.NewAuthHandler(s.authenticator, s.jwtManager)
	settleHandler := handlers.NewSettleHandler()
	splitsHandler := handlers.NewSplitsHandler(s.store, s.cache)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Pure computation, no account needed.
		r.Post("/settle", settleHandler.Settle)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwtManager))

			r.Post("/splits", splitsHandler.Create)
			r.Get("/splits", splitsHandler.List)
			r.Get("/splits/{id}", splitsHandler.Get)
			r.Put("/splits/{id}", splitsHandler.Update)
			r.Delete("/splits/{id}", splitsHandler.Delete)
		})
	})
}

// Handler returns the underlying router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for requests. Blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("API server starting", "address", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
