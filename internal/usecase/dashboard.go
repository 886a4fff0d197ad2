package usecase

import (
	"context"
	"strings"
)

type DashboardUseCase struct {
	Contacts ContactRepositoryInterface
	Activity *ActivityAggregator
}

func NewDashboardUseCase(contacts ContactRepositoryInterface, activity *ActivityAggregator) *DashboardUseCase {
	return &DashboardUseCase{Contacts: contacts, Activity: activity}
}

// Execute lists every contact with its last-contacted date, then applies the
// dashboard filters. The store is re-read on every call; nothing is cached.
func (uc *DashboardUseCase) Execute(ctx context.Context, filter DashboardFilter) ([]DashboardRow, error) {
	contacts, err := uc.Contacts.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	rows := make([]DashboardRow, 0, len(contacts))
	for _, c := range contacts {
		if !matches(filter, c.Status, c.AssignedContractor, c.Industry, c.Name, c.Email, c.Company) {
			continue
		}

		last, err := uc.Activity.LastContactedDisplay(ctx, c.ID)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "STORE_ERROR",
				Message: "failed to compute last contacted: " + err.Error(),
			}
		}

		rows = append(rows, DashboardRow{Contact: *c, LastContacted: last})
	}
	return rows, nil
}

func matches(f DashboardFilter, status, contractor, industry, name, email, company string) bool {
	if f.Status != "" && status != f.Status {
		return false
	}
	if f.Contractor != "" && contractor != f.Contractor {
		return false
	}
	if f.Industry != "" && industry != f.Industry {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(name), q) &&
			!strings.Contains(strings.ToLower(email), q) &&
			!strings.Contains(strings.ToLower(company), q) {
			return false
		}
	}
	return true
}
