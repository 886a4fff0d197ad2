package usecase

import (
	"context"
	"fmt"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type AddContactUseCase struct {
	Repo ContactRepositoryInterface
}

func NewAddContactUseCase(repo ContactRepositoryInterface) *AddContactUseCase {
	return &AddContactUseCase{Repo: repo}
}

// Execute runs the idempotent create-or-find flow: calling it twice with the
// same non-empty email yields the same ID and appends exactly one row.
func (uc *AddContactUseCase) Execute(ctx context.Context, input ContactInput) (*AddContactOutput, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	contact, err := entity.NewContact(
		input.Name, input.Email, input.Phone, input.Company,
		input.Industry, input.Status, input.AssignedContractor,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	id, created, err := uc.Repo.CreateOrFind(ctx, contact)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to create contact: " + err.Error(),
		}
	}

	msg := fmt.Sprintf("Contact %s added with ID %d", contact.Name, id)
	if !created {
		msg = fmt.Sprintf("Contact with email %s already exists as ID %d", contact.Email, id)
	}

	return &AddContactOutput{ID: id, Created: created, Msg: msg}, nil
}
