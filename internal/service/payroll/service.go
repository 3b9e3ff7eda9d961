package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	project.ProjectRepository
	activitylog.LogRepository
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
	projectRepository project.ProjectRepository,
	logRepository activitylog.LogRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepository,
		EmployeeRepository:   employeeRepository,
		ProjectRepository:    projectRepository,
		LogRepository:        logRepository,
	}
}

// Create implements payroll.PayrollService.
// Admin-issued payments are final on creation: APPROVED and paid, with
// amount and calculated salary equal. Employee advance requests land
// PENDING and unpaid until an admin approves them.
func (s *PayrollServiceImpl) Create(ctx context.Context, actor user.Actor, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record := payroll.Payroll{
		EmployeeID:       req.EmployeeID,
		ObjectID:         req.ObjectID,
		Amount:           req.Amount.Decimal,
		CalculatedSalary: req.Amount.Decimal,
		Date:             req.Date,
		Month:            req.MonthFromDate(),
		Type:             payroll.PayrollType(req.Type),
		Comment:          req.Comment,
	}

	if actor.IsAdmin() {
		record.Status = payroll.StatusApproved
		record.PaymentStatus = payroll.PaymentPaid
	} else {
		if !actor.Owns(req.EmployeeID) {
			return payroll.PayrollResponse{}, user.ErrAdminPrivilegeRequired
		}
		record.Status = payroll.StatusPending
		record.PaymentStatus = payroll.PaymentUnpaid
	}

	if req.ObjectID != nil {
		proj, err := s.ProjectRepository.GetByID(ctx, *req.ObjectID)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
		record.ObjectName = &proj.Name
	}

	saved, err := s.PayrollRepository.Create(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	saved.EmployeeName = &emp.Name

	if actor.IsAdmin() {
		s.recordActivity(ctx, fmt.Sprintf("Payment issued: %s, %s %s", emp.Name, saved.Amount.String(), emp.Currency), actor.Name)
	}

	return payroll.ToResponse(saved), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, actor user.Actor, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	if !actor.IsAdmin() {
		if actor.EmployeeID == nil {
			return []payroll.PayrollResponse{}, nil
		}
		filter.EmployeeID = actor.EmployeeID
	}

	records, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponseList(records), nil
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, id string, performer string) (payroll.PayrollResponse, error) {
	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if existing.Status == payroll.StatusApproved {
		return payroll.ToResponse(existing), nil
	}

	approved, err := s.PayrollRepository.Approve(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	name := approved.EmployeeID
	if approved.EmployeeName != nil {
		name = *approved.EmployeeName
	}
	s.recordActivity(ctx, fmt.Sprintf("Payroll approved: %s, %s", name, approved.Amount.String()), performer)

	return payroll.ToResponse(approved), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string, performer string) error {
	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.PayrollRepository.Delete(ctx, id); err != nil {
		return err
	}

	name := existing.EmployeeID
	if existing.EmployeeName != nil {
		name = *existing.EmployeeName
	}
	s.recordActivity(ctx, fmt.Sprintf("Payroll removed: %s, %s", name, existing.Amount.String()), performer)

	return nil
}

func (s *PayrollServiceImpl) recordActivity(ctx context.Context, action string, performer string) {
	if _, err := s.LogRepository.Create(ctx, activitylog.Log{Action: action, Performer: performer}); err != nil {
		slog.Error("Failed to record activity", "action", action, "error", err)
	}
}
