package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryType enum
type SalaryType string

const (
	SalaryTypeDaily   SalaryType = "DAILY"
	SalaryTypeMonthly SalaryType = "MONTHLY"
)

// Status enum
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Employee struct {
	ID         string
	Name       string
	Position   string
	Email      string
	SalaryType SalaryType
	SalaryRate decimal.Decimal
	Currency   string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// RateAppliedPerDay reports whether the balance math treats this
// employee's rate as a per-day figure even though the salary type says
// otherwise. The earned total has always been workedDays * rate for
// both types; callers surface this flag instead of changing the math.
func (e *Employee) RateAppliedPerDay() bool {
	return e.SalaryType == SalaryTypeMonthly
}
