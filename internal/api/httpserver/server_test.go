package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcanvas/internal/api/handlers"
	"flowcanvas/internal/catalog"
	"flowcanvas/internal/config"
	"flowcanvas/internal/layout"
	"flowcanvas/internal/session"
	"flowcanvas/internal/workflow"
	"flowcanvas/pkg/logger"
	"flowcanvas/pkg/metrics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "flowcanvas"},
		API: config.APIConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}

	log := logger.Discard()
	store := workflow.NewFileStore(t.TempDir(), workflow.NewTemplateRegistry(), log)
	tools := catalog.Load(filepath.Join(t.TempDir(), "missing.json"), log)

	tmplPath := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(tmplPath, []byte(`<html>{{.ToolsJSON}}</html>`), 0o644))
	index, err := handlers.NewIndexHandler(tmplPath, tools, log)
	require.NoError(t, err)

	return New(cfg, Handlers{
		Workflows: handlers.NewWorkflowHandler(store, log),
		Layout:    handlers.NewLayoutHandler(layout.NewMemoryStore(), session.NewManager("test-secret", "fc_session"), log),
		Tools:     handlers.NewToolsHandler(tools),
		Index:     index,
		Meta:      handlers.NewMetaHandler("flowcanvas", "test"),
	}, metrics.New(nil), log)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouting(t *testing.T) {
	h := newTestServer(t).Handler()

	t.Run("health", func(t *testing.T) {
		rec := get(t, h, "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("version", func(t *testing.T) {
		rec := get(t, h, "/version")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get(t, h, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("templates", func(t *testing.T) {
		rec := get(t, h, "/api/workflow/templates")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
	})

	t.Run("tools", func(t *testing.T) {
		rec := get(t, h, "/api/tools")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("index", func(t *testing.T) {
		rec := get(t, h, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html>")
	})

	t.Run("save then delete round trip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/workflow/save", strings.NewReader(`{"name": "Router Flow"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/workflow/delete", strings.NewReader(`{"name": "Router Flow"}`))
		req.Header.Set("Content-Type", "application/json")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := get(t, h, "/api/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
