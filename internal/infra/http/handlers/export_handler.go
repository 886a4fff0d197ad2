package handlers

import (
	"net/http"

	"github.com/charlesw/alexandria-crm/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportContactsUseCase
}

func NewExportHandler(exportUC *usecase.ExportContactsUseCase) *ExportHandler {
	return &ExportHandler{ExportUC: exportUC}
}

// ExportContactsHandler (GET /contacts/export) streams the contact list as a
// CSV download.
func (h *ExportHandler) ExportContactsHandler(w http.ResponseWriter, r *http.Request) {
	csvBytes, err := h.ExportUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(csvBytes)
}
