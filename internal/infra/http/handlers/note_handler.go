package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

type NoteHandler struct {
	AddUC *usecase.AddNoteUseCase
	Notes usecase.NoteRepositoryInterface
}

func NewNoteHandler(addUC *usecase.AddNoteUseCase, notes usecase.NoteRepositoryInterface) *NoteHandler {
	return &NoteHandler{AddUC: addUC, Notes: notes}
}

// AddNoteHandler (POST /contacts/{id}/notes)
func (h *NoteHandler) AddNoteHandler(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "contact id must be an integer")
		return
	}

	var input usecase.AddNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	input.ContactID = contactID

	note, err := h.AddUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordNoteAdded()
	writeJSON(w, http.StatusCreated, note)
}

// ListNotesHandler (GET /contacts/{id}/notes)
func (h *NoteHandler) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "contact id must be an integer")
		return
	}

	notes, err := h.Notes.ListForContact(r.Context(), contactID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, notes)
}
