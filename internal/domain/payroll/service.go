package payroll

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
)

type PayrollService interface {
	// Create routes by actor role: admin-issued payments land APPROVED
	// and paid immediately; employee advance requests land PENDING and
	// unpaid, scoped to the actor's own employee id.
	Create(ctx context.Context, actor user.Actor, req CreatePayrollRequest) (PayrollResponse, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]PayrollResponse, error)
	Approve(ctx context.Context, id string, performer string) (PayrollResponse, error)
	Delete(ctx context.Context, id string, performer string) error
}
