package entity

import "errors"

var (
	// ErrContactNotFound is returned when an update references a contact ID
	// with no matching row in the store.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoEmailAddress is returned when an outreach send targets a contact
	// whose Email column is empty.
	ErrNoEmailAddress = errors.New("contact has no email address")
)
