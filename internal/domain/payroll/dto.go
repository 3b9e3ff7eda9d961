package payroll

import (
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	EmployeeID string       `json:"employeeId"`
	ObjectID   *string      `json:"objectId"`
	Amount     money.Amount `json:"amount"`
	Date       string       `json:"date"`
	Type       string       `json:"type"`
	Comment    *string      `json:"comment"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must be a valid UUID",
		})
	}
	if r.ObjectID != nil && !validator.IsValidUUID(*r.ObjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "objectId",
			Message: "objectId must be a valid UUID",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeDailyPay), string(TypeQuickAdd)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be DAILY_PAY or QUICK_ADD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Month derives the YYYY-MM period from the payment date.
func (r *CreatePayrollRequest) MonthFromDate() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

type Filter struct {
	EmployeeID *string
	ObjectID   *string
	Month      *string
	Status     *string
}

type PayrollResponse struct {
	ID               string        `json:"id"`
	EmployeeID       string        `json:"employeeId"`
	EmployeeName     *string       `json:"employeeName,omitempty"`
	ObjectID         *string       `json:"objectId,omitempty"`
	ObjectName       *string       `json:"objectName,omitempty"`
	Amount           money.Amount  `json:"amount"`
	CalculatedSalary money.Amount  `json:"calculatedSalary"`
	Date             string        `json:"date"`
	Month            string        `json:"month"`
	Type             PayrollType   `json:"type"`
	Status           PayrollStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	Comment          *string       `json:"comment,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		ObjectID:         p.ObjectID,
		ObjectName:       p.ObjectName,
		Amount:           money.FromDecimal(p.Amount),
		CalculatedSalary: money.FromDecimal(p.CalculatedSalary),
		Date:             p.Date,
		Month:            p.Month,
		Type:             p.Type,
		Status:           p.Status,
		PaymentStatus:    p.PaymentStatus,
		Comment:          p.Comment,
		CreatedAt:        p.CreatedAt,
	}
}

func ToResponseList(records []Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(records))
	for _, p := range records {
		out = append(out, ToResponse(p))
	}
	return out
}
