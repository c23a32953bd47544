// Command api runs the workflow builder HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowcanvas/internal/api/handlers"
	"flowcanvas/internal/api/httpserver"
	"flowcanvas/internal/catalog"
	"flowcanvas/internal/config"
	"flowcanvas/internal/layout"
	"flowcanvas/internal/repository"
	"flowcanvas/internal/session"
	"flowcanvas/internal/workflow"
	"flowcanvas/pkg/logger"
	"flowcanvas/pkg/metrics"
)

const version = "1.0.0"

func main() {
	log := logger.New("api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "error", err)
	}
	log.SetLevel(cfg.Logging.Level)

	if cfg.Session.Secret == "dev-secret-key-change-in-production" {
		log.Warn("using the default session secret, set SESSION_SECRET in production")
	}

	templates := workflow.NewTemplateRegistry()

	var workflowStore workflow.Store
	var layoutStore layout.Store

	switch cfg.Storage.Backend {
	case "database":
		db, err := repository.Open(cfg.Storage)
		if err != nil {
			log.Fatal("failed to open database", "driver", cfg.Storage.Driver, "error", err)
		}
		workflowStore = repository.NewWorkflowRepository(db, templates, log)
		layoutStore = repository.NewLayoutRepository(db)
		log.Info("using database storage", "driver", cfg.Storage.Driver)
	default:
		workflowStore = workflow.NewFileStore(cfg.Storage.WorkflowsDir, templates, log)
		layoutStore = layout.NewMemoryStore()
		log.Info("using file storage", "dir", cfg.Storage.WorkflowsDir)
	}

	tools := catalog.Load(cfg.Catalog.Path, log)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.CookieName)
	m := metrics.New(&metrics.Config{Enabled: cfg.Metrics.Enabled, Namespace: cfg.Metrics.Namespace})

	indexHandler, err := handlers.NewIndexHandler("web/templates/index.html", tools, log)
	if err != nil {
		log.Fatal("failed to parse index template", "error", err)
	}

	srv := httpserver.New(cfg, httpserver.Handlers{
		Workflows: handlers.NewWorkflowHandler(workflowStore, log),
		Layout:    handlers.NewLayoutHandler(layoutStore, sessions, log),
		Tools:     handlers.NewToolsHandler(tools),
		Index:     indexHandler,
		Meta:      handlers.NewMetaHandler(cfg.App.Name, version),
	}, m, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	log.Info("server stopped")
}
