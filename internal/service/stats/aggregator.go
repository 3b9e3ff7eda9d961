// Package stats is the single source of truth for every derived figure
// the dashboard shows: employee balances, project budget reconciliation,
// attendance rates and rankings. All functions are pure and total over
// in-memory slices; callers fetch the records, stats does the math.
package stats

import (
	"sort"

	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type EmployeeBalance struct {
	EmployeeID  string          `json:"employeeId"`
	WorkedDays  int             `json:"workedDays"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	TotalEarned decimal.Decimal `json:"totalEarned"`
	TotalTaken  decimal.Decimal `json:"totalTaken"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type ProjectStats struct {
	ProjectID             string          `json:"projectId"`
	Spent                 decimal.Decimal `json:"spent"`
	Budget                decimal.Decimal `json:"budget"`
	Balance               decimal.Decimal `json:"balance"`
	Pct                   int             `json:"pct"`
	IsOverBudget          bool            `json:"isOverBudget"`
	DistinctEmployeeCount int             `json:"distinctEmployeeCount"`
}

type AttendanceStats struct {
	PresentCount           int `json:"presentCount"`
	PendingCount           int `json:"pendingCount"`
	AbsentCount            int `json:"absentCount"`
	UniquePresentEmployees int `json:"uniquePresentEmployees"`
	AttendanceRatePct      int `json:"attendanceRatePct"`
}

type EarnerTotal struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Total        decimal.Decimal `json:"total"`
}

type ProjectTotal struct {
	ProjectID   string          `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Spent       decimal.Decimal `json:"spent"`
}

// ComputeEmployeeBalance derives an employee's running account:
// workedDays * rate earned, approved payouts taken, the rest remaining.
// Remaining goes negative when an employee is over-paid; no clamping.
// The rate multiplies per PRESENT day regardless of salary type.
func ComputeEmployeeBalance(emp employee.Employee, records []attendance.Attendance, payouts []payroll.Payroll) EmployeeBalance {
	workedDays := 0
	for _, a := range records {
		if a.EmployeeID == emp.ID && a.Status == attendance.StatusPresent {
			workedDays++
		}
	}

	rate := emp.SalaryRate
	earned := rate.Mul(decimal.NewFromInt(int64(workedDays)))

	taken := decimal.Zero
	for _, p := range payouts {
		if p.EmployeeID == emp.ID && p.Status == payroll.StatusApproved {
			taken = taken.Add(p.CalculatedSalary)
		}
	}

	return EmployeeBalance{
		EmployeeID:  emp.ID,
		WorkedDays:  workedDays,
		DailyRate:   rate,
		TotalEarned: earned,
		TotalTaken:  taken,
		Remaining:   earned.Sub(taken),
	}
}

// ComputeProjectStats reconciles a project's budget against approved
// payroll attributed to it. Unbudgeted projects report 0% utilization
// and can never be over budget.
func ComputeProjectStats(p project.Project, payouts []payroll.Payroll) ProjectStats {
	spent := decimal.Zero
	seen := make(map[string]struct{})
	for _, rec := range payouts {
		if rec.ObjectID == nil || *rec.ObjectID != p.ID || rec.Status != payroll.StatusApproved {
			continue
		}
		spent = spent.Add(rec.CalculatedSalary)
		seen[rec.EmployeeID] = struct{}{}
	}

	budget := p.TotalBudget
	balance := budget.Sub(spent)

	pct := 0
	if budget.IsPositive() {
		pct = int(spent.Div(budget).Mul(hundred).Round(0).IntPart())
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
	}

	return ProjectStats{
		ProjectID:             p.ID,
		Spent:                 spent,
		Budget:                budget,
		Balance:               balance,
		Pct:                   pct,
		IsOverBudget:          budget.IsPositive() && balance.IsNegative(),
		DistinctEmployeeCount: len(seen),
	}
}

// ComputeAttendanceStats counts records by status and derives the rate.
// Single-date mode rates by raw PRESENT count; range mode rates by
// distinct employees with at least one PRESENT record, so one employee
// present three times in a five-day window counts once, not three times.
// Zero active employees yields a 0 rate.
func ComputeAttendanceStats(records []attendance.Attendance, singleDate bool, activeEmployees int) AttendanceStats {
	s := AttendanceStats{}
	uniquePresent := make(map[string]struct{})

	for _, a := range records {
		switch a.Status {
		case attendance.StatusPresent:
			s.PresentCount++
			uniquePresent[a.EmployeeID] = struct{}{}
		case attendance.StatusPending:
			s.PendingCount++
		case attendance.StatusAbsent:
			s.AbsentCount++
		}
	}
	s.UniquePresentEmployees = len(uniquePresent)

	if activeEmployees > 0 {
		numerator := s.UniquePresentEmployees
		if singleDate {
			numerator = s.PresentCount
		}
		s.AttendanceRatePct = roundPct(numerator, activeEmployees)
	}

	return s
}

// EmployeeTotals sums approved payroll per employee, optionally scoped
// to one YYYY-MM month, sorted descending. Ties keep input order.
func EmployeeTotals(payouts []payroll.Payroll, month string) []EarnerTotal {
	totals := make(map[string]*EarnerTotal)
	var order []string

	for _, p := range payouts {
		if p.Status != payroll.StatusApproved {
			continue
		}
		if month != "" && p.Month != month {
			continue
		}
		t, ok := totals[p.EmployeeID]
		if !ok {
			t = &EarnerTotal{EmployeeID: p.EmployeeID, Total: decimal.Zero}
			if p.EmployeeName != nil {
				t.EmployeeName = *p.EmployeeName
			}
			totals[p.EmployeeID] = t
			order = append(order, p.EmployeeID)
		}
		t.Total = t.Total.Add(p.CalculatedSalary)
	}

	out := make([]EarnerTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// TopEarner returns the employee with the largest approved total, or
// nil when nothing is approved.
func TopEarner(payouts []payroll.Payroll, month string) *EarnerTotal {
	totals := EmployeeTotals(payouts, month)
	if len(totals) == 0 {
		return nil
	}
	return &totals[0]
}

// ProjectTotals sums approved spend per project, sorted descending.
// Projects with no approved payroll report zero spend.
func ProjectTotals(projects []project.Project, payouts []payroll.Payroll) []ProjectTotal {
	out := make([]ProjectTotal, 0, len(projects))
	for _, p := range projects {
		stats := ComputeProjectStats(p, payouts)
		out = append(out, ProjectTotal{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Spent:       stats.Spent,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Spent.GreaterThan(out[j].Spent)
	})
	return out
}

// TopProject returns the project with the largest approved spend, or
// nil when there are no projects.
func TopProject(projects []project.Project, payouts []payroll.Payroll) *ProjectTotal {
	totals := ProjectTotals(projects, payouts)
	if len(totals) == 0 {
		return nil
	}
	return &totals[0]
}

// ProjectEmployeeBreakdown sums approved spend per employee within one
// project, sorted descending.
func ProjectEmployeeBreakdown(projectID string, payouts []payroll.Payroll) []EarnerTotal {
	scoped := make([]payroll.Payroll, 0, len(payouts))
	for _, p := range payouts {
		if p.ObjectID != nil && *p.ObjectID == projectID {
			scoped = append(scoped, p)
		}
	}
	return EmployeeTotals(scoped, "")
}

// roundPct computes round(n/d*100) without floating point.
func roundPct(n, d int) int {
	return int(decimal.NewFromInt(int64(n * 100)).DivRound(decimal.NewFromInt(int64(d)), 0).IntPart())
}
