package employee

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
)

// BalanceResponse is the employee account statement: days worked times
// rate, minus approved payouts. Negative remaining means overpaid.
type BalanceResponse struct {
	EmployeeID        string       `json:"employeeId"`
	WorkedDays        int          `json:"workedDays"`
	DailyRate         money.Amount `json:"dailyRate"`
	TotalEarned       money.Amount `json:"totalEarned"`
	TotalTaken        money.Amount `json:"totalTaken"`
	Remaining         money.Amount `json:"remaining"`
	RateAppliedPerDay bool         `json:"rateAppliedPerDay"`
}

type EmployeeService interface {
	// Create also provisions the employee's login credential; both
	// writes happen in one transaction.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	// GetByID and Balance expose salary data, so non-admin callers may
	// only read their own record.
	GetByID(ctx context.Context, actor user.Actor, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete removes the employee and its credential. History rows stay.
	Delete(ctx context.Context, id string, performer string) error
	Balance(ctx context.Context, actor user.Actor, id string) (BalanceResponse, error)
}
