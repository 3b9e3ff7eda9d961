package dashboard

import (
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

// SummaryRequest selects the window the roll-up covers. Date and
// From/To are mutually exclusive; with neither set the service uses
// today.
type SummaryRequest struct {
	Date  *string
	From  *string
	To    *string
	Month *string // YYYY-MM, scopes the leaderboard; defaults to the current month
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && (r.From != nil || r.To != nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date cannot be combined with from/to",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.From != nil {
		if _, ok := validator.IsValidDate(*r.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if r.To != nil {
		if _, ok := validator.IsValidDate(*r.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Month != nil {
		if _, ok := validator.IsValidMonth(*r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceSummary struct {
	PresentCount           int `json:"presentCount"`
	PendingCount           int `json:"pendingCount"`
	AbsentCount            int `json:"absentCount"`
	UniquePresentEmployees int `json:"uniquePresentEmployees"`
	AttendanceRatePct      int `json:"attendanceRatePct"`
}

type PayrollSummary struct {
	TotalApproved money.Amount `json:"totalApproved"`
	TotalPending  money.Amount `json:"totalPending"`
	RecordCount   int          `json:"recordCount"`
}

type EarnerSummary struct {
	EmployeeID   string       `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Total        money.Amount `json:"total"`
}

type ProjectSummary struct {
	ProjectID   string       `json:"projectId"`
	ProjectName string       `json:"projectName"`
	Spent       money.Amount `json:"spent"`
}

// SummaryResponse is the whole dashboard in one payload so the client
// renders from a single fetch.
type SummaryResponse struct {
	TotalEmployees  int               `json:"totalEmployees"`
	ActiveEmployees int               `json:"activeEmployees"`
	Attendance      AttendanceSummary `json:"attendance"`
	Payroll         PayrollSummary    `json:"payroll"`
	TopEarner       *EarnerSummary    `json:"topEarner"`
	TopProject      *ProjectSummary   `json:"topProject"`
	Leaderboard     []EarnerSummary   `json:"leaderboard"`
	Month           string            `json:"month"`
}
