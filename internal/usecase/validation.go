package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	// Email is optional (some contacts are phone-only), but when present it
	// has to parse, since it doubles as the dedup key.
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.Status == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	} else if !entity.IsValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of: New Lead, In Progress, Closed"})
	}

	return errors
}

func ValidateAddNoteInput(input AddNoteInput) []ValidationError {
	var errors []ValidationError

	if input.ContactID <= 0 {
		errors = append(errors, ValidationError{"contact_id", "must be a positive integer"})
	}
	if strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"note", "is required"})
	}

	return errors
}

func ValidateSendOutreachInput(input SendOutreachInput) []ValidationError {
	var errors []ValidationError

	if input.ContactID <= 0 {
		errors = append(errors, ValidationError{"contact_id", "must be a positive integer"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}
	if strings.TrimSpace(input.FromAccount) == "" {
		errors = append(errors, ValidationError{"from_account", "is required"})
	}

	return errors
}

// validationFailure folds field errors into the single DomainError envelope
// the handler layer reports.
func validationFailure(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: strings.TrimSuffix(msg, ", "),
	}
}
