package report

import "github.com/dost-electric/workforce-backend-go/internal/pkg/validator"

// Kind selects the projection a report renders.
type Kind string

const (
	KindEmployees  Kind = "employees"
	KindAttendance Kind = "attendance"
	KindPayroll    Kind = "payroll"
	KindProjects   Kind = "projects"
	KindBalances   Kind = "balances"
)

func ValidKind(s string) bool {
	switch Kind(s) {
	case KindEmployees, KindAttendance, KindPayroll, KindProjects, KindBalances:
		return true
	}
	return false
}

type ReportRequest struct {
	Kind     Kind
	Month    *string // YYYY-MM
	ObjectID *string
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidKind(string(r.Kind)) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of employees, attendance, payroll, projects, balances",
		})
	}
	if r.Month != nil {
		if _, ok := validator.IsValidMonth(*r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}
	if r.ObjectID != nil && !validator.IsValidUUID(*r.ObjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "object_id",
			Message: "object_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
