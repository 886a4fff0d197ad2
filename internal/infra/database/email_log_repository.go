package database

import (
	"context"
	"strconv"
	"time"

	"github.com/charlesw/alexandria-crm/internal/entity"
	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

type EmailLogRepository struct {
	Store store.TableStore
}

func NewEmailLogRepository(s store.TableStore) *EmailLogRepository {
	return &EmailLogRepository{Store: s}
}

// ListAll returns the full send log in store order.
func (r *EmailLogRepository) ListAll(ctx context.Context) ([]*entity.EmailLogEntry, error) {
	rows, err := r.Store.GetAllRows(ctx, TableEmailLog, EmailHeaders)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.EmailLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, emailLogFromRow(row))
	}
	return entries, nil
}

func (r *EmailLogRepository) ListForContact(ctx context.Context, contactID int) ([]*entity.EmailLogEntry, error) {
	rows, err := r.Store.GetAllRows(ctx, TableEmailLog, EmailHeaders)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.EmailLogEntry, 0)
	for _, row := range rows {
		if parseID(row["Contact ID"]) != contactID {
			continue
		}
		entries = append(entries, emailLogFromRow(row))
	}
	return entries, nil
}

// Add appends one send-log entry. Email IDs are local sequential integers,
// the same scheme as contacts and notes. Status defaults to "Sent".
func (r *EmailLogRepository) Add(ctx context.Context, contactID int, subject, sentBy, status string) (*entity.EmailLogEntry, error) {
	rows, err := r.Store.GetAllRows(ctx, TableEmailLog, EmailHeaders)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = entity.EmailStatusSent
	}

	entry := &entity.EmailLogEntry{
		ID:        len(rows) + 1,
		ContactID: contactID,
		Subject:   subject,
		SentBy:    sentBy,
		Date:      time.Now().Format(entity.DateLayout),
		Status:    status,
	}

	values := []string{
		strconv.Itoa(entry.ID),
		strconv.Itoa(entry.ContactID),
		entry.Subject,
		entry.SentBy,
		entry.Date,
		entry.Status,
	}
	if err := r.Store.AppendRow(ctx, TableEmailLog, values); err != nil {
		return nil, err
	}
	return entry, nil
}

func emailLogFromRow(row store.Row) *entity.EmailLogEntry {
	return &entity.EmailLogEntry{
		ID:        parseID(row["Email ID"]),
		ContactID: parseID(row["Contact ID"]),
		Subject:   row["Subject"],
		SentBy:    row["Sent By"],
		Date:      row["Date"],
		Status:    row["Status"],
	}
}
