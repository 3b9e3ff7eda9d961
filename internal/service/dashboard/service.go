package dashboard

import (
	"context"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/dashboard"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/service/stats"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	payroll.PayrollRepository
	project.ProjectRepository

	now func() time.Time
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	payrollRepository payroll.PayrollRepository,
	projectRepository project.ProjectRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		PayrollRepository:    payrollRepository,
		ProjectRepository:    projectRepository,
		now:                  time.Now,
	}
}

// Summary implements dashboard.DashboardService.
// One fetch per collection, then everything is derived in memory by the
// stats package. The client renders the whole dashboard from this.
func (s *DashboardServiceImpl) Summary(ctx context.Context, req dashboard.SummaryRequest) (dashboard.SummaryResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	activeCount := 0
	for _, e := range employees {
		if e.IsActive() {
			activeCount++
		}
	}

	filter, singleDate := s.attendanceWindow(req)
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}
	attendanceStats := stats.ComputeAttendanceStats(records, singleDate, activeCount)

	month := s.now().Format("2006-01")
	if req.Month != nil {
		month = *req.Month
	}

	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{Month: &month})
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	totalApproved := decimal.Zero
	totalPending := decimal.Zero
	for _, p := range payouts {
		if p.CountsTowardTotals() {
			totalApproved = totalApproved.Add(p.CalculatedSalary)
		} else {
			totalPending = totalPending.Add(p.CalculatedSalary)
		}
	}

	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	resp := dashboard.SummaryResponse{
		TotalEmployees:  len(employees),
		ActiveEmployees: activeCount,
		Attendance: dashboard.AttendanceSummary{
			PresentCount:           attendanceStats.PresentCount,
			PendingCount:           attendanceStats.PendingCount,
			AbsentCount:            attendanceStats.AbsentCount,
			UniquePresentEmployees: attendanceStats.UniquePresentEmployees,
			AttendanceRatePct:      attendanceStats.AttendanceRatePct,
		},
		Payroll: dashboard.PayrollSummary{
			TotalApproved: money.FromDecimal(totalApproved),
			TotalPending:  money.FromDecimal(totalPending),
			RecordCount:   len(payouts),
		},
		Leaderboard: make([]dashboard.EarnerSummary, 0),
		Month:       month,
	}

	for _, t := range stats.EmployeeTotals(payouts, month) {
		resp.Leaderboard = append(resp.Leaderboard, dashboard.EarnerSummary{
			EmployeeID:   t.EmployeeID,
			EmployeeName: t.EmployeeName,
			Total:        money.FromDecimal(t.Total),
		})
	}
	if len(resp.Leaderboard) > 0 {
		top := resp.Leaderboard[0]
		resp.TopEarner = &top
	}

	if tp := stats.TopProject(projects, payouts); tp != nil {
		resp.TopProject = &dashboard.ProjectSummary{
			ProjectID:   tp.ProjectID,
			ProjectName: tp.ProjectName,
			Spent:       money.FromDecimal(tp.Spent),
		}
	}

	return resp, nil
}

func (s *DashboardServiceImpl) attendanceWindow(req dashboard.SummaryRequest) (attendance.Filter, bool) {
	if req.Date != nil {
		return attendance.Filter{Date: req.Date}, true
	}
	if req.From != nil || req.To != nil {
		singleDate := req.From != nil && req.To != nil && *req.From == *req.To
		return attendance.Filter{From: req.From, To: req.To}, singleDate
	}
	today := s.now().Format("2006-01-02")
	return attendance.Filter{Date: &today}, true
}
