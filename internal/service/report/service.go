package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/report"
	"github.com/dost-electric/workforce-backend-go/internal/service/stats"
	"github.com/shopspring/decimal"
)

// utf8BOM makes Excel open the file as UTF-8 instead of the locale
// codepage. Everything after it is plain RFC 4180 CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// totalsLabel is the label of the summary row, kept in Uzbek as the
// dashboard's spreadsheets always used it.
const totalsLabel = "JAMI"

type ReportServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	payroll.PayrollRepository
	project.ProjectRepository
	activitylog.LogRepository

	now func() time.Time
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	payrollRepository payroll.PayrollRepository,
	projectRepository project.ProjectRepository,
	logRepository activitylog.LogRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		PayrollRepository:    payrollRepository,
		ProjectRepository:    projectRepository,
		LogRepository:        logRepository,
		now:                  time.Now,
	}
}

// RenderCSV implements report.ReportService.
func (s *ReportServiceImpl) RenderCSV(ctx context.Context, req report.ReportRequest) ([]byte, string, error) {
	var rows [][]string
	var err error

	switch req.Kind {
	case report.KindEmployees:
		rows, err = s.employeeRows(ctx)
	case report.KindAttendance:
		rows, err = s.attendanceRows(ctx, req)
	case report.KindPayroll:
		rows, err = s.payrollRows(ctx, req)
	case report.KindProjects:
		rows, err = s.projectRows(ctx)
	case report.KindBalances:
		rows, err = s.balanceRows(ctx)
	default:
		return nil, "", report.ErrUnknownKind
	}
	if err != nil {
		return nil, "", err
	}

	data, err := renderCSV(rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-%s.csv", req.Kind, s.now().Format("2006-01-02"))
	return data, filename, nil
}

func renderCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ReportServiceImpl) employeeRows(ctx context.Context) ([][]string, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Name", "Position", "Email", "Salary Type", "Salary Rate", "Currency", "Status"}}
	for _, e := range employees {
		rows = append(rows, []string{
			e.Name, e.Position, e.Email, string(e.SalaryType),
			e.SalaryRate.String(), e.Currency, string(e.Status),
		})
	}
	return rows, nil
}

func (s *ReportServiceImpl) attendanceRows(ctx context.Context, req report.ReportRequest) ([][]string, error) {
	filter := attendance.Filter{}
	if req.Month != nil {
		from, to := monthBounds(*req.Month)
		filter.From = &from
		filter.To = &to
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Date", "Employee", "Status", "Object", "Marked By"}}
	for _, a := range records {
		rows = append(rows, []string{
			a.Date, deref(a.EmployeeName), string(a.Status), deref(a.ObjectName), string(a.MarkedBy),
		})
	}
	return rows, nil
}

func (s *ReportServiceImpl) payrollRows(ctx context.Context, req report.ReportRequest) ([][]string, error) {
	filter := payroll.Filter{Month: req.Month, ObjectID: req.ObjectID}

	records, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Date", "Employee", "Object", "Type", "Status", "Payment", "Amount", "Comment"}}
	total := decimal.Zero
	for _, p := range records {
		rows = append(rows, []string{
			p.Date, deref(p.EmployeeName), deref(p.ObjectName), string(p.Type),
			string(p.Status), string(p.PaymentStatus), p.CalculatedSalary.String(), deref(p.Comment),
		})
		if p.CountsTowardTotals() {
			total = total.Add(p.CalculatedSalary)
		}
	}
	rows = append(rows, []string{totalsLabel, "", "", "", "", "", total.String(), ""})
	return rows, nil
}

func (s *ReportServiceImpl) projectRows(ctx context.Context) ([][]string, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{})
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Name", "Status", "Budget", "Spent", "Balance", "Used %", "Over Budget"}}
	totalBudget, totalSpent := decimal.Zero, decimal.Zero
	for _, p := range projects {
		ps := stats.ComputeProjectStats(p, payouts)
		rows = append(rows, []string{
			p.Name, string(p.Status), ps.Budget.String(), ps.Spent.String(),
			ps.Balance.String(), fmt.Sprintf("%d", ps.Pct), boolCell(ps.IsOverBudget),
		})
		totalBudget = totalBudget.Add(ps.Budget)
		totalSpent = totalSpent.Add(ps.Spent)
	}
	rows = append(rows, []string{
		totalsLabel, "", totalBudget.String(), totalSpent.String(),
		totalBudget.Sub(totalSpent).String(), "", "",
	})
	return rows, nil
}

func (s *ReportServiceImpl) balanceRows(ctx context.Context) ([][]string, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{})
	if err != nil {
		return nil, err
	}
	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{})
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Employee", "Position", "Worked Days", "Rate", "Earned", "Taken", "Remaining"}}
	totalEarned, totalTaken := decimal.Zero, decimal.Zero
	for _, e := range employees {
		b := stats.ComputeEmployeeBalance(e, records, payouts)
		rows = append(rows, []string{
			e.Name, e.Position, fmt.Sprintf("%d", b.WorkedDays), b.DailyRate.String(),
			b.TotalEarned.String(), b.TotalTaken.String(), b.Remaining.String(),
		})
		totalEarned = totalEarned.Add(b.TotalEarned)
		totalTaken = totalTaken.Add(b.TotalTaken)
	}
	rows = append(rows, []string{
		totalsLabel, "", "", "", totalEarned.String(), totalTaken.String(),
		totalEarned.Sub(totalTaken).String(),
	})
	return rows, nil
}

// ExportJSON implements report.ReportService.
func (s *ReportServiceImpl) ExportJSON(ctx context.Context) (report.ExportResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return report.ExportResponse{}, err
	}
	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{})
	if err != nil {
		return report.ExportResponse{}, err
	}
	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{})
	if err != nil {
		return report.ExportResponse{}, err
	}
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return report.ExportResponse{}, err
	}
	logs, err := s.LogRepository.ListRecent(ctx, activitylog.RecentLimit)
	if err != nil {
		return report.ExportResponse{}, err
	}

	return report.ExportResponse{
		ExportDate: s.now().Format(time.RFC3339),
		Summary: report.ExportSummary{
			Employees:         len(employees),
			AttendanceRecords: len(records),
			PayrollRecords:    len(payouts),
			Objects:           len(projects),
			ActivityLogs:      len(logs),
		},
		Employees:  employee.ToResponseList(employees),
		Attendance: attendance.ToResponseList(records),
		Payroll:    payroll.ToResponseList(payouts),
		Objects:    project.ToResponseList(projects),
		Logs:       activitylog.ToResponseList(logs),
	}, nil
}

// monthBounds expands YYYY-MM to its first and last date.
func monthBounds(month string) (string, string) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return month + "-01", month + "-31"
	}
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
