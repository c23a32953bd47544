// Package httpserver assembles the chi router and owns the http.Server
// lifecycle.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"flowcanvas/internal/api/handlers"
	"flowcanvas/internal/api/middleware"
	"flowcanvas/internal/config"
	"flowcanvas/pkg/logger"
	"flowcanvas/pkg/metrics"
)

// Handlers groups the route handlers the server mounts.
type Handlers struct {
	Workflows *handlers.WorkflowHandler
	Layout    *handlers.LayoutHandler
	Tools     *handlers.ToolsHandler
	Index     *handlers.IndexHandler
	Meta      *handlers.MetaHandler
}

// Server wraps the http.Server with graceful shutdown.
type Server struct {
	server *http.Server
	log    logger.Logger
}

// New builds the router and server from configuration.
func New(cfg *config.Config, h Handlers, m *metrics.Metrics, log logger.Logger) *Server {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(chimw.Compress(5))

	if cfg.API.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.API.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	if cfg.API.RateLimitRequests > 0 {
		rps := float64(cfg.API.RateLimitRequests) / cfg.API.RateLimitWindow.Seconds()
		r.Use(middleware.RateLimit(rps, cfg.API.RateLimitRequests))
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(m))
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/health", h.Meta.Health)
	r.Get("/version", h.Meta.Version)

	r.Get("/", h.Index.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	r.Route("/api", func(r chi.Router) {
		r.Route("/workflow", func(r chi.Router) {
			r.Post("/save", h.Workflows.SaveWorkflow)
			r.Get("/load/{id}", h.Workflows.LoadWorkflow)
			r.Get("/templates", h.Workflows.ListTemplates)
			r.Post("/delete", h.Workflows.DeleteWorkflow)
			r.Post("/execute", h.Workflows.ExecuteWorkflow)
		})

		r.Route("/layout", func(r chi.Router) {
			r.Post("/save", h.Layout.SaveLayout)
			r.Get("/load", h.Layout.LoadLayout)
		})

		r.Get("/tools", h.Tools.ListTools)
	})

	return &Server{
		server: &http.Server{
			Addr:         cfg.API.Addr(),
			Handler:      r,
			ReadTimeout:  cfg.API.ReadTimeout,
			WriteTimeout: cfg.API.WriteTimeout,
			IdleTimeout:  cfg.API.IdleTimeout,
		},
		log: log,
	}
}

// Handler returns the assembled root handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving. It blocks until the listener closes.
func (s *Server) Start() error {
	s.log.Info("http server starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}
