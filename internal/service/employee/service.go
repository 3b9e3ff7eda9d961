package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/repository/postgresql"
	"github.com/dost-electric/workforce-backend-go/internal/service/stats"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultCurrency = "UZS"

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	attendance.AttendanceRepository
	payroll.PayrollRepository
	activitylog.LogRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	attendanceRepository attendance.AttendanceRepository,
	payrollRepository payroll.PayrollRepository,
	logRepository activitylog.LogRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		UserRepository:       userRepository,
		AttendanceRepository: attendanceRepository,
		PayrollRepository:    payrollRepository,
		LogRepository:        logRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	newEmployee := employee.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Email:      req.Email,
		SalaryType: employee.SalaryType(req.SalaryType),
		SalaryRate: req.SalaryRate.Decimal,
		Currency:   currency,
		Status:     employee.StatusActive,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newEmployee, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}

		_, err = s.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Name:         req.Name,
			Role:         user.RoleEmployee,
			EmployeeID:   &newEmployee.ID,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(newEmployee), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, actor user.Actor, id string) (employee.EmployeeResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(id) {
		return employee.EmployeeResponse{}, user.ErrAdminPrivilegeRequired
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponseList(employees), nil
}

// Update implements employee.EmployeeService.
// Credential fields (email, name, password) are mirrored onto the
// linked user so the login stays in sync with the record.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	var updated employee.Employee

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = s.EmployeeRepository.Update(txCtx, req)
		if err != nil {
			return err
		}

		if req.Email == nil && req.Name == nil && req.Password == nil {
			return nil
		}

		passwordHash := ""
		if req.Password != nil && *req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			passwordHash = string(hash)
		}

		err = s.UserRepository.UpdateCredentials(txCtx, updated.ID, updated.Email, updated.Name, passwordHash)
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, performer string) error {
	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.DeleteByEmployeeID(txCtx, id); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.recordActivity(ctx, fmt.Sprintf("Employee deleted: %s", existing.Name), performer)
	return nil
}

// Balance implements employee.EmployeeService.
// Non-admin callers only ever see their own statement.
func (s *EmployeeServiceImpl) Balance(ctx context.Context, actor user.Actor, id string) (employee.BalanceResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(id) {
		return employee.BalanceResponse{}, user.ErrAdminPrivilegeRequired
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{EmployeeID: &id})
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{EmployeeID: &id})
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	b := stats.ComputeEmployeeBalance(e, records, payouts)

	return employee.BalanceResponse{
		EmployeeID:        b.EmployeeID,
		WorkedDays:        b.WorkedDays,
		DailyRate:         money.FromDecimal(b.DailyRate),
		TotalEarned:       money.FromDecimal(b.TotalEarned),
		TotalTaken:        money.FromDecimal(b.TotalTaken),
		Remaining:         money.FromDecimal(b.Remaining),
		RateAppliedPerDay: e.RateAppliedPerDay(),
	}, nil
}

// recordActivity is best effort; a failed audit write never fails the
// operation it describes.
func (s *EmployeeServiceImpl) recordActivity(ctx context.Context, action string, performer string) {
	if _, err := s.LogRepository.Create(ctx, activitylog.Log{Action: action, Performer: performer}); err != nil {
		slog.Error("Failed to record activity", "action", action, "error", err)
	}
}
