package usecase

import (
	"context"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type AddNoteUseCase struct {
	Notes NoteRepositoryInterface
}

func NewAddNoteUseCase(notes NoteRepositoryInterface) *AddNoteUseCase {
	return &AddNoteUseCase{Notes: notes}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, input AddNoteInput) (*entity.Note, error) {
	if errs := ValidateAddNoteInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	note, err := uc.Notes.Add(ctx, input.ContactID, input.Contractor, input.Body)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to add note: " + err.Error(),
		}
	}
	return note, nil
}
