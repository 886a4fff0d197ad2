package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
)

// Column order of the CSV export, matching the Contacts table contract.
var exportHeaders = []string{
	"Contact ID", "Name", "Email", "Phone", "Company", "Industry",
	"Status", "Assigned Contractor", "Created Date",
}

type ExportContactsUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewExportContactsUseCase(contacts ContactRepositoryInterface) *ExportContactsUseCase {
	return &ExportContactsUseCase{Contacts: contacts}
}

// Execute renders every contact as CSV for download.
func (uc *ExportContactsUseCase) Execute(ctx context.Context) ([]byte, error) {
	contacts, err := uc.Contacts.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, c := range contacts {
		record := []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Email,
			c.Phone,
			c.Company,
			c.Industry,
			c.Status,
			c.AssignedContractor,
			c.CreatedDate,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
