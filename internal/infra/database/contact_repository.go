package database

import (
	"context"
	"strconv"

	"github.com/charlesw/alexandria-crm/internal/entity"
	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

type ContactRepository struct {
	Store store.TableStore
}

func NewContactRepository(s store.TableStore) *ContactRepository {
	return &ContactRepository{Store: s}
}

// ListAll fetches every contact row against the 9-column contract.
func (r *ContactRepository) ListAll(ctx context.Context) ([]*entity.Contact, error) {
	rows, err := r.Store.GetAllRows(ctx, TableContacts, ContactHeaders)
	if err != nil {
		return nil, err
	}

	contacts := make([]*entity.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactFromRow(row))
	}
	return contacts, nil
}

// CreateOrFind enforces uniqueness by email: when the contact carries a
// non-empty email that exactly matches an existing row, the existing ID is
// returned with created=false and nothing is written. Otherwise the contact
// gets the next sequential ID (row count + 1) and is appended.
func (r *ContactRepository) CreateOrFind(ctx context.Context, c *entity.Contact) (int, bool, error) {
	rows, err := r.Store.GetAllRows(ctx, TableContacts, ContactHeaders)
	if err != nil {
		return 0, false, err
	}

	if c.Email != "" {
		for _, row := range rows {
			if row["Email"] == c.Email {
				return parseID(row["Contact ID"]), false, nil
			}
		}
	}

	c.ID = len(rows) + 1
	if err := r.Store.AppendRow(ctx, TableContacts, contactRowValues(c)); err != nil {
		return 0, false, err
	}
	return c.ID, true, nil
}

// Update overwrites the full row of the matching contact while preserving its
// original Created Date. A miss fails with entity.ErrContactNotFound.
func (r *ContactRepository) Update(ctx context.Context, id int, c *entity.Contact) error {
	rows, err := r.Store.GetAllRows(ctx, TableContacts, ContactHeaders)
	if err != nil {
		return err
	}

	// Row 1 is the header row, so data row i sits at sheet row i+2.
	for i, row := range rows {
		if parseID(row["Contact ID"]) != id {
			continue
		}

		updated := *c
		updated.ID = id
		updated.CreatedDate = row["Created Date"]

		rangeSpec := store.RowRange(i+2, len(ContactHeaders))
		return r.Store.UpdateRange(ctx, TableContacts, rangeSpec, contactRowValues(&updated))
	}

	return entity.ErrContactNotFound
}

func contactFromRow(row store.Row) *entity.Contact {
	return &entity.Contact{
		ID:                 parseID(row["Contact ID"]),
		Name:               row["Name"],
		Email:              row["Email"],
		Phone:              row["Phone"],
		Company:            row["Company"],
		Industry:           row["Industry"],
		Status:             row["Status"],
		AssignedContractor: row["Assigned Contractor"],
		CreatedDate:        row["Created Date"],
	}
}

func contactRowValues(c *entity.Contact) []string {
	return []string{
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
}

// parseID normalizes the store's text IDs to integers at the repository
// boundary. Unparseable values come back as 0, which no assigned ID ever is.
func parseID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return id
}
