package entity

// Default status stamped on every logged send.
const EmailStatusSent = "Sent"

// Entity: EmailLogEntry
//
// Append-only send log. IDs are local sequential integers, same scheme as
// contacts and notes; the SMTP Message-ID is transport metadata and is not
// persisted.
type EmailLogEntry struct {
	ID        int    `json:"id"`
	ContactID int    `json:"contact_id"`
	Subject   string `json:"subject"`
	SentBy    string `json:"sent_by"`
	Date      string `json:"date"` // ISO calendar date
	Status    string `json:"status"`
}
