package handlers

import (
	"encoding/json"
	"net/http"

	"flowcanvas/internal/layout"
	"flowcanvas/internal/session"
	"flowcanvas/pkg/errors"
	"flowcanvas/pkg/logger"
)

// LayoutHandler persists and restores per-session UI layout state.
type LayoutHandler struct {
	store    layout.Store
	sessions *session.Manager
	log      logger.Logger
}

// NewLayoutHandler creates a layout handler.
func NewLayoutHandler(store layout.Store, sessions *session.Manager, log logger.Logger) *LayoutHandler {
	return &LayoutHandler{store: store, sessions: sessions, log: log}
}

type saveLayoutRequest struct {
	PanelState  map[string]any `json:"panel_state"`
	CanvasState map[string]any `json:"canvas_state"`
}

type loadLayoutResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

// SaveLayout stores the posted layout fields for the caller's session,
// minting a session cookie on first save.
func (h *LayoutHandler) SaveLayout(w http.ResponseWriter, r *http.Request) {
	var req saveLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SerializationError("layout payload", err))
		return
	}

	sid := h.sessions.SessionID(r)
	if sid == "" {
		var err error
		sid, err = h.sessions.Issue(w)
		if err != nil {
			h.log.ErrorContext(r.Context(), "session issue failed", "error", err)
			writeError(w, errors.InternalError("Could not establish session"))
			return
		}
	}

	update := layout.Update{PanelState: req.PanelState, CanvasState: req.CanvasState}
	if err := h.store.Save(r.Context(), sid, update); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Layout saved successfully")
}

// LoadLayout returns the caller's stored layout. Callers without a
// session get an empty mapping and no cookie.
func (h *LayoutHandler) LoadLayout(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}

	if sid := h.sessions.SessionID(r); sid != "" {
		state, err := h.store.Load(r.Context(), sid)
		if err != nil {
			writeError(w, err)
			return
		}
		data = state
	}

	writeJSON(w, http.StatusOK, loadLayoutResponse{Status: "success", Data: data})
}
