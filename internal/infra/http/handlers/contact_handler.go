package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

type ContactHandler struct {
	AddUC       *usecase.AddContactUseCase
	UpdateUC    *usecase.UpdateContactUseCase
	DashboardUC *usecase.DashboardUseCase
	PipelineUC  *usecase.PipelineUseCase
}

func NewContactHandler(
	addUC *usecase.AddContactUseCase,
	updateUC *usecase.UpdateContactUseCase,
	dashboardUC *usecase.DashboardUseCase,
	pipelineUC *usecase.PipelineUseCase,
) *ContactHandler {
	return &ContactHandler{
		AddUC:       addUC,
		UpdateUC:    updateUC,
		DashboardUC: dashboardUC,
		PipelineUC:  pipelineUC,
	}
}

// CreateContactHandler (POST /contacts)
func (h *ContactHandler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	output, err := h.AddUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
		middleware.RecordContactCreated()
	}
	writeJSON(w, status, output)
}

// UpdateContactHandler (PUT /contacts/{id})
func (h *ContactHandler) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "contact id must be an integer")
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if err := h.UpdateUC.Execute(r.Context(), id, input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "updated": true})
}

// DashboardHandler (GET /contacts?status=&contractor=&industry=&q=)
func (h *ContactHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DashboardFilter{
		Status:     r.URL.Query().Get("status"),
		Contractor: r.URL.Query().Get("contractor"),
		Industry:   r.URL.Query().Get("industry"),
		Search:     r.URL.Query().Get("q"),
	}

	rows, err := h.DashboardUC.Execute(r.Context(), filter)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// PipelineHandler (GET /pipeline)
func (h *ContactHandler) PipelineHandler(w http.ResponseWriter, r *http.Request) {
	columns, err := h.PipelineUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, columns)
}
