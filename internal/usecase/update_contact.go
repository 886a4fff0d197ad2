package usecase

import (
	"context"
	"errors"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type UpdateContactUseCase struct {
	Repo ContactRepositoryInterface
}

func NewUpdateContactUseCase(repo ContactRepositoryInterface) *UpdateContactUseCase {
	return &UpdateContactUseCase{Repo: repo}
}

// Execute overwrites every editable field of the contact. Created Date is
// preserved by the repository. Updating an unknown ID is a hard failure, not
// a silent no-op.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, id int, input ContactInput) error {
	if id <= 0 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "contact id must be a positive integer"}
	}
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return validationFailure(errs)
	}

	contact := &entity.Contact{
		ID:                 id,
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		Company:            input.Company,
		Industry:           input.Industry,
		Status:             input.Status,
		AssignedContractor: input.AssignedContractor,
	}

	if err := uc.Repo.Update(ctx, id, contact); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return &DomainError{Code: "CONTACT_NOT_FOUND", Message: err.Error()}
		}
		return &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to update contact: " + err.Error(),
		}
	}
	return nil
}
