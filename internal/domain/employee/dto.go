package employee

import (
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string       `json:"name"`
	Position   string       `json:"position"`
	Email      string       `json:"email"`
	Password   string       `json:"password"`
	SalaryType string       `json:"salaryType"`
	SalaryRate money.Amount `json:"salaryRate"`
	Currency   string       `json:"currency"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters long",
		})
	}

	if !validator.IsInSlice(r.SalaryType, []string{string(SalaryTypeDaily), string(SalaryTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "salaryType",
			Message: "salaryType must be DAILY or MONTHLY",
		})
	}

	if r.SalaryRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salaryRate",
			Message: "salaryRate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string        `json:"-"`
	Name       *string       `json:"name"`
	Position   *string       `json:"position"`
	Email      *string       `json:"email"`
	Password   *string       `json:"password"`
	SalaryType *string       `json:"salaryType"`
	SalaryRate *money.Amount `json:"salaryRate"`
	Currency   *string       `json:"currency"`
	Status     *string       `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, []string{string(SalaryTypeDaily), string(SalaryTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "salaryType",
			Message: "salaryType must be DAILY or MONTHLY",
		})
	}
	if r.SalaryRate != nil && r.SalaryRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salaryRate",
			Message: "salaryRate must not be negative",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeResponse is the wire shape the dashboard consumes. The
// salaryType/rate mismatch flag rides along so admin screens can show
// the warning without re-deriving it.
type EmployeeResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Position         string       `json:"position"`
	Email            string       `json:"email"`
	SalaryType       SalaryType   `json:"salaryType"`
	SalaryRate       money.Amount `json:"salaryRate"`
	Currency         string       `json:"currency"`
	Status           Status       `json:"status"`
	RateAppliedPerDay bool        `json:"rateAppliedPerDay"`
	CreatedAt        time.Time    `json:"createdAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Position:          e.Position,
		Email:             e.Email,
		SalaryType:        e.SalaryType,
		SalaryRate:        money.FromDecimal(e.SalaryRate),
		Currency:          e.Currency,
		Status:            e.Status,
		RateAppliedPerDay: e.RateAppliedPerDay(),
		CreatedAt:         e.CreatedAt,
	}
}

func ToResponseList(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
