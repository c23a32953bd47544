// Package handlers implements the HTTP surface of the workflow builder.
package handlers

import (
	"encoding/json"
	"net/http"

	"flowcanvas/pkg/errors"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.HTTPStatus()
		message = appErr.Message
	}

	writeJSON(w, statusCode, statusResponse{Status: "error", Message: message})
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: message})
}
