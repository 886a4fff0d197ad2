package database

import (
	"context"
	"fmt"

	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

// The three tables and their fixed header contracts. Column order matters:
// rows are written positionally and updates overwrite full row ranges.
const (
	TableContacts = "Contacts"
	TableNotes    = "Notes"
	TableEmailLog = "Email_Log"
)

var (
	ContactHeaders = []string{
		"Contact ID", "Name", "Email", "Phone", "Company", "Industry",
		"Status", "Assigned Contractor", "Created Date",
	}
	NoteHeaders  = []string{"Note ID", "Contact ID", "Contractor", "Date", "Note"}
	EmailHeaders = []string{"Email ID", "Contact ID", "Subject", "Sent By", "Date", "Status"}
)

// Bootstrap creates any of the three tables that are missing, header row
// included. Run once at startup.
func Bootstrap(ctx context.Context, s store.TableStore) error {
	tables := []struct {
		name    string
		headers []string
	}{
		{TableContacts, ContactHeaders},
		{TableNotes, NoteHeaders},
		{TableEmailLog, EmailHeaders},
	}

	for _, t := range tables {
		if err := s.EnsureTable(ctx, t.name, t.headers); err != nil {
			return fmt.Errorf("bootstrap table %s: %w", t.name, err)
		}
	}
	return nil
}
