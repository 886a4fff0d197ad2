package usecase

import "github.com/charlesw/alexandria-crm/internal/entity"

// ContactInput carries the editable contact fields. It serves both the add
// and the update flows; Created Date is never an input, the repository owns
// it.
type ContactInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	Industry           string `json:"industry"`
	Status             string `json:"status"`
	AssignedContractor string `json:"assigned_contractor"`
}

type AddContactOutput struct {
	ID      int    `json:"id"`
	Created bool   `json:"created"` // false when the email matched an existing row
	Msg     string `json:"msg"`
}

type AddNoteInput struct {
	ContactID  int    `json:"contact_id"`
	Contractor string `json:"contractor"`
	Body       string `json:"note"`
}

type SendOutreachInput struct {
	ContactID   int    `json:"contact_id"`
	Subject     string `json:"subject"`
	Body        string `json:"message"`
	FromAccount string `json:"from_account"`
}

type SendOutreachOutput struct {
	EmailID   int    `json:"email_id"`
	MessageID string `json:"message_id"`
	SentTo    string `json:"sent_to"`
}

// DashboardFilter mirrors the dashboard controls: exact-match dropdowns plus
// a free-text search. Zero values mean "All".
type DashboardFilter struct {
	Status     string
	Contractor string
	Industry   string
	Search     string
}

type DashboardRow struct {
	entity.Contact
	LastContacted string `json:"last_contacted"`
}

type PipelineColumn struct {
	Stage    string            `json:"stage"`
	Contacts []*entity.Contact `json:"contacts"`
}
