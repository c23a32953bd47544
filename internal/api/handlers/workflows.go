package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flowcanvas/internal/workflow"
	"flowcanvas/pkg/errors"
	"flowcanvas/pkg/logger"
)

// WorkflowHandler serves workflow save/load/delete/template endpoints.
type WorkflowHandler struct {
	store workflow.Store
	log   logger.Logger
}

// NewWorkflowHandler creates a workflow handler over the given store.
func NewWorkflowHandler(store workflow.Store, log logger.Logger) *WorkflowHandler {
	return &WorkflowHandler{store: store, log: log}
}

type saveWorkflowResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
}

type deleteWorkflowRequest struct {
	Name string `json:"name"`
}

type deleteWorkflowResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	DeletedFile string `json:"deleted_file"`
}

// SaveWorkflow persists the posted document and reports the derived
// filename. An unreadable body is a serialization failure, not a client
// error.
func (h *WorkflowHandler) SaveWorkflow(w http.ResponseWriter, r *http.Request) {
	var doc workflow.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.SerializationError("workflow payload", err))
		return
	}

	res, err := h.store.Save(r.Context(), &doc)
	if err != nil {
		h.log.ErrorContext(r.Context(), "workflow save failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saveWorkflowResponse{
		Status:   "success",
		Message:  fmt.Sprintf("Workflow saved as %s", res.Filename),
		FilePath: res.Path,
		Filename: res.Filename,
	})
}

// LoadWorkflow returns the stored document or seeded template verbatim.
func (h *WorkflowHandler) LoadWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.store.Load(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// ListTemplates returns the seeded templates as a bare array.
func (h *WorkflowHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Templates(r.Context()))
}

// DeleteWorkflow removes the workflow matching the posted name.
func (h *WorkflowHandler) DeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	var req deleteWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SerializationError("delete payload", err))
		return
	}

	deleted, err := h.store.Delete(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteWorkflowResponse{
		Status:      "success",
		Message:     fmt.Sprintf("Workflow '%s' deleted successfully", req.Name),
		DeletedFile: deleted,
	})
}

// ExecuteWorkflow acknowledges the request without running anything.
// Execution is out of scope; the canvas only needs the acknowledgement.
func (h *WorkflowHandler) ExecuteWorkflow(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "Workflow execution started")
}
