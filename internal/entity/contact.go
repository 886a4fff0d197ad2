package entity

import (
	"errors"
	"strings"
	"time"
)

// Pipeline statuses, in board order.
const (
	StatusNewLead    = "New Lead"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

// PipelineStages returns every valid status in pipeline order.
func PipelineStages() []string {
	return []string{StatusNewLead, StatusInProgress, StatusClosed}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusNewLead, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Entity: Contact
//
// IDs are assigned sequentially by the repository (row count + 1) and are never
// reused; contacts cannot be deleted. Email is a natural dedup key when non-empty.
type Contact struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Status   string `json:"status"`

	AssignedContractor string `json:"assigned_contractor"`

	// CreatedDate is an ISO calendar date (YYYY-MM-DD), set once at creation
	// and immutable thereafter. The record store holds it as text.
	CreatedDate string `json:"created_date"`
}

// Factory
func NewContact(name, email, phone, company, industry, status, contractor string) (*Contact, error) {
	contact := &Contact{
		Name:               name,
		Email:              email,
		Phone:              phone,
		Company:            company,
		Industry:           industry,
		Status:             status,
		AssignedContractor: contractor,
		CreatedDate:        time.Now().Format(DateLayout),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if !IsValidStatus(c.Status) {
		return errors.New("status must be one of: New Lead, In Progress, Closed")
	}
	return nil
}

// DateLayout is the calendar-date format used across all three tables.
const DateLayout = "2006-01-02"
