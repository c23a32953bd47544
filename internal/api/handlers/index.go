package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"flowcanvas/internal/catalog"
	"flowcanvas/pkg/logger"
)

// IndexHandler renders the builder page with the tool palette embedded,
// saving the canvas a round trip on first paint.
type IndexHandler struct {
	tmpl    *template.Template
	catalog *catalog.Catalog
	log     logger.Logger
}

// NewIndexHandler parses the page template. The template file is part of
// the deployment; a parse failure is a startup error.
func NewIndexHandler(templatePath string, c *catalog.Catalog, log logger.Logger) (*IndexHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}
	return &IndexHandler{tmpl: tmpl, catalog: c, log: log}, nil
}

type indexData struct {
	ToolsJSON template.JS
}

// Index serves the builder page.
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	tools, err := json.Marshal(h.catalog.Tools())
	if err != nil {
		h.log.ErrorContext(r.Context(), "tool palette encode failed", "error", err)
		tools = []byte("[]")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, indexData{ToolsJSON: template.JS(tools)}); err != nil {
		h.log.ErrorContext(r.Context(), "index render failed", "error", err)
	}
}
