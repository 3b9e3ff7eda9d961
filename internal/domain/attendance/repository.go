package attendance

import "context"

type AttendanceRepository interface {
	// Upsert inserts or overwrites the record keyed on (employee, date).
	// At most one row per pair ever exists.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeDate(ctx context.Context, employeeID string, date string) (Attendance, error)
	List(ctx context.Context, filter Filter) ([]Attendance, error)
	// Approve moves a record to PRESENT. Approving an already PRESENT
	// record is a no-op.
	Approve(ctx context.Context, id string) (Attendance, error)
	Delete(ctx context.Context, id string) error
}
