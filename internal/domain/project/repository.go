package project

import (
	"context"

	"github.com/shopspring/decimal"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	// List returns all projects with their income history attached.
	List(ctx context.Context) ([]Project, error)
	Delete(ctx context.Context, id string) error
	// AddIncome appends a top-up entry. Budget adjustment is a separate
	// call so both run inside one transaction at the service layer.
	AddIncome(ctx context.Context, entry IncomeEntry) (IncomeEntry, error)
	IncreaseBudget(ctx context.Context, projectID string, amount decimal.Decimal) error
}
