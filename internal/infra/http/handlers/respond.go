package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUseCaseError maps the usecase error taxonomy onto HTTP statuses.
// Domain failures are the caller's fault; technical failures are ours or an
// external service's.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if de.Code == "CONTACT_NOT_FOUND" {
			status = http.StatusNotFound
		}
		writeError(w, status, de.Code, de.Message)
		return
	}
	if te, ok := err.(*usecase.TechnicalError); ok {
		if te.Code == "STORE_ERROR" {
			middleware.RecordStoreError("api")
		}
		writeError(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
