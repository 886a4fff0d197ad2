package entity

// Entity: Note
//
// Append-only. Notes are never updated or deleted; store order is chronological
// order.
type Note struct {
	ID         int    `json:"id"`
	ContactID  int    `json:"contact_id"`
	Contractor string `json:"contractor"`
	Date       string `json:"date"` // ISO calendar date
	Body       string `json:"body"`
}
