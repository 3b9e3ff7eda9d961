package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	project.ProjectRepository
	activitylog.LogRepository

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	projectRepository project.ProjectRepository,
	logRepository activitylog.LogRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		ProjectRepository:    projectRepository,
		LogRepository:        logRepository,
		now:                  time.Now,
	}
}

// Upsert implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Upsert(ctx context.Context, actor user.Actor, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     attendance.Status(req.Status),
		ObjectID:   req.ObjectID,
		MarkedBy:   attendance.MarkedByAdmin,
	}

	if !actor.IsAdmin() {
		if !actor.Owns(req.EmployeeID) {
			return attendance.AttendanceResponse{}, user.ErrAdminPrivilegeRequired
		}
		if !emp.IsActive() {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
		}
		if req.Date != s.now().Format("2006-01-02") {
			return attendance.AttendanceResponse{}, attendance.ErrCheckInNotToday
		}

		// An existing PENDING or PRESENT record blocks a second
		// check-in; an ABSENT one may be overwritten.
		existing, err := s.AttendanceRepository.GetByEmployeeDate(ctx, req.EmployeeID, req.Date)
		if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		if err == nil && existing.Status != attendance.StatusAbsent {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}

		record.Status = attendance.StatusPending
		record.MarkedBy = attendance.MarkedByEmployee
	}

	if req.ObjectID != nil {
		proj, err := s.ProjectRepository.GetByID(ctx, *req.ObjectID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.ObjectName = &proj.Name
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	saved.EmployeeName = &emp.Name

	return attendance.ToResponse(saved), nil
}

// List implements attendance.AttendanceService.
// Non-admin callers only ever see their own records regardless of the
// filter they send.
func (s *AttendanceServiceImpl) List(ctx context.Context, actor user.Actor, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	if !actor.IsAdmin() {
		if actor.EmployeeID == nil {
			return []attendance.AttendanceResponse{}, nil
		}
		filter.EmployeeID = actor.EmployeeID
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponseList(records), nil
}

// Approve implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Approve(ctx context.Context, id string, performer string) (attendance.AttendanceResponse, error) {
	existing, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Approving twice is a no-op; only ABSENT cannot be approved.
	if existing.Status == attendance.StatusPresent {
		return attendance.ToResponse(existing), nil
	}
	if existing.Status == attendance.StatusAbsent {
		return attendance.AttendanceResponse{}, attendance.ErrNotPending
	}

	approved, err := s.AttendanceRepository.Approve(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	name := approved.EmployeeID
	if approved.EmployeeName != nil {
		name = *approved.EmployeeName
	}
	s.recordActivity(ctx, fmt.Sprintf("Attendance approved: %s (%s)", name, approved.Date), performer)

	return attendance.ToResponse(approved), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string, performer string) error {
	existing, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		return err
	}

	name := existing.EmployeeID
	if existing.EmployeeName != nil {
		name = *existing.EmployeeName
	}
	s.recordActivity(ctx, fmt.Sprintf("Attendance removed: %s (%s)", name, existing.Date), performer)

	return nil
}

func (s *AttendanceServiceImpl) recordActivity(ctx context.Context, action string, performer string) {
	if _, err := s.LogRepository.Create(ctx, activitylog.Log{Action: action, Performer: performer}); err != nil {
		slog.Error("Failed to record activity", "action", action, "error", err)
	}
}
