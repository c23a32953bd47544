package handlers

import (
	"net/http"

	"flowcanvas/internal/catalog"
)

// ToolsHandler serves the tool palette.
type ToolsHandler struct {
	catalog *catalog.Catalog
}

// NewToolsHandler creates a tools handler.
func NewToolsHandler(c *catalog.Catalog) *ToolsHandler {
	return &ToolsHandler{catalog: c}
}

// ListTools returns the catalog as a bare JSON array.
func (h *ToolsHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Tools())
}
