package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	// List returns every employee; the dashboard works on full
	// collections and filters client-side.
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	// Delete is a hard delete. Attendance and payroll history is left
	// in place, matched by id only.
	Delete(ctx context.Context, id string) error
}
