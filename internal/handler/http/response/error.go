package response

import (
	"errors"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/auth"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/report"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role gating
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrSuperAdminPrivilegeRequired):
		Forbidden(w, "Super admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists), errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance for this date already submitted")
	case errors.Is(err, attendance.ErrCheckInNotToday):
		BadRequest(w, "Self check-in is only allowed for today", nil)
	case errors.Is(err, attendance.ErrNotPending):
		Conflict(w, "Attendance record is not pending")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Object not found")
	case errors.Is(err, project.ErrNameExists):
		Conflict(w, "Object name already exists")

	// Report domain errors
	case errors.Is(err, report.ErrUnknownKind):
		BadRequest(w, "Unknown report kind", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
