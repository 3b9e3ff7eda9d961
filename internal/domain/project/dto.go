package project

import (
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string       `json:"name"`
	TotalBudget money.Amount `json:"totalBudget"`
	Status      string       `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if r.TotalBudget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "totalBudget",
			Message: "totalBudget must not be negative",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddIncomeRequest struct {
	ProjectID string       `json:"-"`
	Amount    money.Amount `json:"amount"`
	Comment   string       `json:"comment"`
}

func (r *AddIncomeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IncomeEntryResponse struct {
	ID        string       `json:"id"`
	Amount    money.Amount `json:"amount"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
}

type ProjectResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	TotalBudget   money.Amount          `json:"totalBudget"`
	Status        Status                `json:"status"`
	IncomeHistory []IncomeEntryResponse `json:"incomeHistory"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func ToResponse(p Project) ProjectResponse {
	history := make([]IncomeEntryResponse, 0, len(p.IncomeHistory))
	for _, entry := range p.IncomeHistory {
		history = append(history, IncomeEntryResponse{
			ID:        entry.ID,
			Amount:    money.FromDecimal(entry.Amount),
			Comment:   entry.Comment,
			CreatedAt: entry.CreatedAt,
		})
	}
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		TotalBudget:   money.FromDecimal(p.TotalBudget),
		Status:        p.Status,
		IncomeHistory: history,
		CreatedAt:     p.CreatedAt,
	}
}

func ToResponseList(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToResponse(p))
	}
	return out
}
