package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context, filter Filter) ([]Payroll, error)
	// Approve marks a PENDING record APPROVED and paid. Approving an
	// APPROVED record is a no-op; the record is returned either way.
	Approve(ctx context.Context, id string) (Payroll, error)
	Delete(ctx context.Context, id string) error
}
