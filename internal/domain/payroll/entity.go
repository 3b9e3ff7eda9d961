package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollType enum
type PayrollType string

const (
	TypeDailyPay PayrollType = "DAILY_PAY" // admin-issued full or partial salary payment
	TypeQuickAdd PayrollType = "QUICK_ADD" // ad-hoc advance
)

// PayrollStatus enum
type PayrollStatus string

const (
	StatusPending  PayrollStatus = "PENDING"
	StatusApproved PayrollStatus = "APPROVED"
)

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type Payroll struct {
	ID         string
	EmployeeID string
	ObjectID   *string
	ObjectName *string
	// Amount and CalculatedSalary are equal by construction; both are
	// stored because downstream consumers read one or the other.
	Amount           decimal.Decimal
	CalculatedSalary decimal.Decimal
	Date             string // YYYY-MM-DD
	Month            string // YYYY-MM, derived from Date
	Type             PayrollType
	Status           PayrollStatus
	PaymentStatus    PaymentStatus
	Comment          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// CountsTowardTotals reports whether this record contributes to an
// employee's taken total and a project's spent total.
func (p *Payroll) CountsTowardTotals() bool {
	return p.Status == StatusApproved
}
