package usecase

import (
	"context"
	"time"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

// NoActivity is the dashboard's sentinel for a contact with no notes and no
// logged emails. Matches what the operators have always seen in that column.
const NoActivity = "—"

// ActivityAggregator computes "last contacted" per contact by merging note
// and email-log dates. Read-only: it never writes to either table.
type ActivityAggregator struct {
	Notes  NoteRepositoryInterface
	Emails EmailLogRepositoryInterface
}

func NewActivityAggregator(notes NoteRepositoryInterface, emails EmailLogRepositoryInterface) *ActivityAggregator {
	return &ActivityAggregator{Notes: notes, Emails: emails}
}

// LastContacted returns the most recent calendar date among the contact's
// notes and logged emails. ok is false when the contact has no datable
// activity. Malformed or empty date cells are skipped, not errors.
func (a *ActivityAggregator) LastContacted(ctx context.Context, contactID int) (last time.Time, ok bool, err error) {
	notes, err := a.Notes.ListForContact(ctx, contactID)
	if err != nil {
		return time.Time{}, false, err
	}
	emails, err := a.Emails.ListForContact(ctx, contactID)
	if err != nil {
		return time.Time{}, false, err
	}

	for _, n := range notes {
		last, ok = laterOf(last, ok, n.Date)
	}
	for _, e := range emails {
		last, ok = laterOf(last, ok, e.Date)
	}
	return last, ok, nil
}

// LastContactedDisplay formats LastContacted for listings: the ISO date, or
// the NoActivity sentinel.
func (a *ActivityAggregator) LastContactedDisplay(ctx context.Context, contactID int) (string, error) {
	last, ok, err := a.LastContacted(ctx, contactID)
	if err != nil {
		return "", err
	}
	if !ok {
		return NoActivity, nil
	}
	return last.Format(entity.DateLayout), nil
}

func laterOf(current time.Time, ok bool, dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return current, ok
	}
	d, err := time.Parse(entity.DateLayout, dateStr)
	if err != nil {
		return current, ok
	}
	if !ok || d.After(current) {
		return d, true
	}
	return current, ok
}
