package employee

import (
	"context"
	"testing"

	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeDate(_ context.Context, _ string, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Approve(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }

type fakePayrollRepo struct {
	records []payroll.Payroll
}

func (f *fakePayrollRepo) Create(_ context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	return p, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, _ string) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) List(_ context.Context, filter payroll.Filter) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePayrollRepo) Approve(_ context.Context, _ string) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) Delete(_ context.Context, _ string) error { return nil }

const (
	empAlice = "11111111-1111-1111-1111-111111111111"
	empBob   = "22222222-2222-2222-2222-222222222222"
)

func newReadOnlyService(attRepo *fakeAttendanceRepo, payRepo *fakePayrollRepo) employee.EmployeeService {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: empAlice, Name: "Alice", SalaryType: employee.SalaryTypeDaily, SalaryRate: decimal.NewFromInt(100000), Status: employee.StatusActive},
		{ID: empBob, Name: "Bob", SalaryType: employee.SalaryTypeDaily, SalaryRate: decimal.NewFromInt(80000), Status: employee.StatusActive},
	}}
	return NewEmployeeService(nil, empRepo, nil, attRepo, payRepo, nil)
}

func selfActor(employeeID string) user.Actor {
	id := employeeID
	return user.Actor{UserID: "u1", Name: "Alice", Role: user.RoleEmployee, EmployeeID: &id}
}

func adminActor() user.Actor {
	return user.Actor{UserID: "u2", Name: "Boss", Role: user.RoleAdmin}
}

func TestBalanceOwnRecord(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-10", Status: attendance.StatusPresent},
		{ID: "b", EmployeeID: empAlice, Date: "2025-03-11", Status: attendance.StatusPresent},
		{ID: "c", EmployeeID: empAlice, Date: "2025-03-12", Status: attendance.StatusPending},
	}}
	payRepo := &fakePayrollRepo{records: []payroll.Payroll{
		{ID: "p1", EmployeeID: empAlice, CalculatedSalary: decimal.NewFromInt(50000), Status: payroll.StatusApproved},
		{ID: "p2", EmployeeID: empAlice, CalculatedSalary: decimal.NewFromInt(99999), Status: payroll.StatusPending},
	}}
	svc := newReadOnlyService(attRepo, payRepo)

	balance, err := svc.Balance(context.Background(), selfActor(empAlice), empAlice)
	require.NoError(t, err)

	assert.Equal(t, 2, balance.WorkedDays)
	assert.Equal(t, "200000", balance.TotalEarned.String())
	assert.Equal(t, "50000", balance.TotalTaken.String())
	assert.Equal(t, "150000", balance.Remaining.String())
	assert.False(t, balance.RateAppliedPerDay)
}

func TestBalanceOtherEmployeeForbidden(t *testing.T) {
	svc := newReadOnlyService(&fakeAttendanceRepo{}, &fakePayrollRepo{})

	_, err := svc.Balance(context.Background(), selfActor(empBob), empAlice)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestGetByIDOtherEmployeeForbidden(t *testing.T) {
	svc := newReadOnlyService(&fakeAttendanceRepo{}, &fakePayrollRepo{})

	_, err := svc.GetByID(context.Background(), selfActor(empBob), empAlice)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestGetByIDOwnRecord(t *testing.T) {
	svc := newReadOnlyService(&fakeAttendanceRepo{}, &fakePayrollRepo{})

	resp, err := svc.GetByID(context.Background(), selfActor(empAlice), empAlice)
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
}

func TestAdminReadsAnyRecord(t *testing.T) {
	svc := newReadOnlyService(&fakeAttendanceRepo{}, &fakePayrollRepo{})

	resp, err := svc.GetByID(context.Background(), adminActor(), empBob)
	require.NoError(t, err)
	assert.Equal(t, "Bob", resp.Name)

	_, err = svc.Balance(context.Background(), adminActor(), empBob)
	require.NoError(t, err)
}
