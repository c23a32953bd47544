package handlers

import (
	"net/http"
	"time"
)

// MetaHandler serves the liveness and version endpoints.
type MetaHandler struct {
	service string
	version string
	started time.Time
}

// NewMetaHandler creates a meta handler stamped with the process start.
func NewMetaHandler(service, version string) *MetaHandler {
	return &MetaHandler{service: service, version: version, started: time.Now()}
}

// Health reports process liveness.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": h.service,
		"uptime":  time.Since(h.started).String(),
	})
}

// Version reports the build version.
func (h *MetaHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": h.service,
		"version": h.version,
	})
}
