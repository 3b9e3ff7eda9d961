package report

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
)

type ExportSummary struct {
	Employees         int `json:"employees"`
	AttendanceRecords int `json:"attendanceRecords"`
	PayrollRecords    int `json:"payrollRecords"`
	Objects           int `json:"objects"`
	ActivityLogs      int `json:"activityLogs"`
}

// ExportResponse is the full backup payload. Projects keep their
// legacy "objects" name on the wire.
type ExportResponse struct {
	ExportDate string                          `json:"exportDate"`
	Summary    ExportSummary                   `json:"summary"`
	Employees  []employee.EmployeeResponse     `json:"employees"`
	Attendance []attendance.AttendanceResponse `json:"attendance"`
	Payroll    []payroll.PayrollResponse       `json:"payroll"`
	Objects    []project.ProjectResponse       `json:"objects"`
	Logs       []activitylog.LogResponse       `json:"activityLogs"`
}

type ReportService interface {
	// RenderCSV returns the finished document, UTF-8 BOM included, plus
	// a filename suggestion for the Content-Disposition header.
	RenderCSV(ctx context.Context, req ReportRequest) (data []byte, filename string, err error)
	ExportJSON(ctx context.Context) (ExportResponse, error)
}
