package project

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
)

// EmployeeExpense is one row of a project's per-employee spend breakdown.
type EmployeeExpense struct {
	EmployeeID   string       `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Total        money.Amount `json:"total"`
}

// ProjectStatsResponse is the budget reconciliation for one project.
// All figures are derived from approved payroll at read time.
type ProjectStatsResponse struct {
	ProjectID             string            `json:"projectId"`
	Name                  string            `json:"name"`
	Spent                 money.Amount      `json:"spent"`
	Budget                money.Amount      `json:"budget"`
	Balance               money.Amount      `json:"balance"`
	Pct                   int               `json:"pct"`
	IsOverBudget          bool              `json:"isOverBudget"`
	DistinctEmployeeCount int               `json:"distinctEmployeeCount"`
	Breakdown             []EmployeeExpense `json:"breakdown"`
}

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest, performer string) (ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	Delete(ctx context.Context, id string, performer string) error
	// AddIncome appends a top-up entry and bumps the budget in one
	// transaction, then returns the refreshed project.
	AddIncome(ctx context.Context, req AddIncomeRequest, performer string) (ProjectResponse, error)
	Stats(ctx context.Context, id string) (ProjectStatsResponse, error)
}
