package attendance

import "time"

// Status enum. There is no implicit state for "no record"; absence of
// a row for (employee, date) is the fourth state.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

// MarkedBy records who initiated the record.
type MarkedBy string

const (
	MarkedByEmployee MarkedBy = "employee"
	MarkedByAdmin    MarkedBy = "admin"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD, unique per employee
	Status     Status
	ObjectID   *string
	ObjectName *string
	MarkedBy   MarkedBy
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
