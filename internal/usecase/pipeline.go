package usecase

import (
	"context"

	"github.com/charlesw/alexandria-crm/internal/entity"
)

type PipelineUseCase struct {
	Contacts ContactRepositoryInterface
}

func NewPipelineUseCase(contacts ContactRepositoryInterface) *PipelineUseCase {
	return &PipelineUseCase{Contacts: contacts}
}

// Execute groups contacts by status in pipeline order. Contacts whose status
// cell holds an out-of-enum value are left off the board; they still show on
// the dashboard.
func (uc *PipelineUseCase) Execute(ctx context.Context) ([]PipelineColumn, error) {
	contacts, err := uc.Contacts.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	stages := entity.PipelineStages()
	columns := make([]PipelineColumn, len(stages))
	for i, stage := range stages {
		columns[i] = PipelineColumn{Stage: stage, Contacts: []*entity.Contact{}}
	}

	for _, c := range contacts {
		for i, stage := range stages {
			if c.Status == stage {
				columns[i].Contacts = append(columns[i].Contacts, c)
				break
			}
		}
	}
	return columns, nil
}
