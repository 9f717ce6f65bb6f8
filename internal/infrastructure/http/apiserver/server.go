// Package apiserver provides the JSON API HTTP server.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/application/goals"
	"github.com/vitabox/v1/internal/infrastructure/config"
	"github.com/vitabox/v1/internal/infrastructure/http/handlers"
	"github.com/vitabox/v1/internal/infrastructure/http/middleware"
	"github.com/vitabox/v1/internal/ports/inbound"
	"github.com/vitabox/v1/pkg/healthcheck"
)

// APIServer serves the recommendation engine's JSON API.
type APIServer struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	engine  inbound.EngineService
	goals   *goals.Store
	checker *healthcheck.Checker
}

// New creates a new API server instance.
func New(
	cfg *config.Config,
	log *zap.Logger,
	engine inbound.EngineService,
	goalStore *goals.Store,
	checker *healthcheck.Checker,
) *APIServer {
	s := &APIServer{
		config:  cfg,
		logger:  log,
		engine:  engine,
		goals:   goalStore,
		checker: checker,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the JSON API routes.
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(metrics.Handler())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config))
	}
	r.Use(middleware.RateLimit(s.config))

	r.Get("/health", s.checker.Handler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints.
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	h := handlers.NewAPIHandlers(s.engine, s.logger)
	goalsH := handlers.NewGoalsHandlers(s.goals, s.logger)

	r.Post("/recommendations", h.GetRecommendations)
	r.Get("/recommendations/{userID}", h.SessionRecommendations)
	r.Post("/advisor/chat", h.ChatWithAdvisor)

	r.Get("/catalog", h.ListCatalog)

	r.Route("/pricing", func(r chi.Router) {
		r.Get("/plans", h.ComparePlans)
		r.Get("/plans/{plan}", h.PlanQuote)
	})

	r.Route("/subscriptions", func(r chi.Router) {
		r.Get("/", h.ListSubscriptions)
		r.Post("/", h.Subscribe)
		r.Delete("/{id}", h.CancelSubscription)
	})

	r.Route("/goals/sessions", func(r chi.Router) {
		r.Post("/", goalsH.StartSession)
		r.Get("/{id}", goalsH.GetSession)
		r.Post("/{id}/toggle", goalsH.ToggleKeyword)
		r.Post("/{id}/next", goalsH.NextCategory)
		r.Post("/{id}/previous", goalsH.PreviousCategory)
		r.Post("/{id}/complete", goalsH.CompleteSession)
	})
}

// Start begins serving requests.
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}
