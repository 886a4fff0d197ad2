package database

import (
	"context"
	"strconv"
	"time"

	"github.com/charlesw/alexandria-crm/internal/entity"
	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

type NoteRepository struct {
	Store store.TableStore
}

func NewNoteRepository(s store.TableStore) *NoteRepository {
	return &NoteRepository{Store: s}
}

// ListForContact returns the contact's notes in store order, which is append
// order and therefore chronological.
func (r *NoteRepository) ListForContact(ctx context.Context, contactID int) ([]*entity.Note, error) {
	rows, err := r.Store.GetAllRows(ctx, TableNotes, NoteHeaders)
	if err != nil {
		return nil, err
	}

	notes := make([]*entity.Note, 0)
	for _, row := range rows {
		if parseID(row["Contact ID"]) != contactID {
			continue
		}
		notes = append(notes, noteFromRow(row))
	}
	return notes, nil
}

// Add appends a note with the next sequential ID and today's date. Notes are
// never updated or deleted.
func (r *NoteRepository) Add(ctx context.Context, contactID int, contractor, body string) (*entity.Note, error) {
	rows, err := r.Store.GetAllRows(ctx, TableNotes, NoteHeaders)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{
		ID:         len(rows) + 1,
		ContactID:  contactID,
		Contractor: contractor,
		Date:       time.Now().Format(entity.DateLayout),
		Body:       body,
	}

	values := []string{
		strconv.Itoa(note.ID),
		strconv.Itoa(note.ContactID),
		note.Contractor,
		note.Date,
		note.Body,
	}
	if err := r.Store.AppendRow(ctx, TableNotes, values); err != nil {
		return nil, err
	}
	return note, nil
}

func noteFromRow(row store.Row) *entity.Note {
	return &entity.Note{
		ID:         parseID(row["Note ID"]),
		ContactID:  parseID(row["Contact ID"]),
		Contractor: row["Contractor"],
		Date:       row["Date"],
		Body:       row["Note"],
	}
}
