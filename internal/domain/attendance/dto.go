package attendance

import (
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

// UpsertAttendanceRequest covers both write paths: employee self
// check-in (always lands PENDING) and admin manual marking (PRESENT or
// ABSENT, any date). The service decides which path applies from the
// caller's role, not from the payload.
type UpsertAttendanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	ObjectID   *string `json:"objectId"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusPresent), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PENDING, PRESENT or ABSENT",
		})
	}
	if r.ObjectID != nil && !validator.IsValidUUID(*r.ObjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "objectId",
			Message: "objectId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string
	Date       *string
	From       *string
	To         *string
	Status     *string
}

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName *string   `json:"employeeName,omitempty"`
	Date         string    `json:"date"`
	Status       Status    `json:"status"`
	ObjectID     *string   `json:"objectId,omitempty"`
	ObjectName   *string   `json:"objectName,omitempty"`
	MarkedBy     MarkedBy  `json:"markedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date,
		Status:       a.Status,
		ObjectID:     a.ObjectID,
		ObjectName:   a.ObjectName,
		MarkedBy:     a.MarkedBy,
		CreatedAt:    a.CreatedAt,
	}
}

func ToResponseList(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}
