package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

type EmailHandler struct {
	SendUC   *usecase.SendOutreachUseCase
	EmailLog usecase.EmailLogRepositoryInterface
}

func NewEmailHandler(sendUC *usecase.SendOutreachUseCase, emailLog usecase.EmailLogRepositoryInterface) *EmailHandler {
	return &EmailHandler{SendUC: sendUC, EmailLog: emailLog}
}

// SendOutreachHandler (POST /contacts/{id}/outreach)
func (h *EmailHandler) SendOutreachHandler(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "contact id must be an integer")
		return
	}

	var input usecase.SendOutreachInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	input.ContactID = contactID

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordOutreachEmail(input.FromAccount)
	writeJSON(w, http.StatusCreated, output)
}

// ListContactEmailsHandler (GET /contacts/{id}/emails)
func (h *EmailHandler) ListContactEmailsHandler(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "contact id must be an integer")
		return
	}

	entries, err := h.EmailLog.ListForContact(r.Context(), contactID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListAllEmailsHandler (GET /emails)
func (h *EmailHandler) ListAllEmailsHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.EmailLog.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
