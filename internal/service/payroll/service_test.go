package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	records  []payroll.Payroll
	approves int
	nextID   int
}

func (f *fakePayrollRepo) Create(_ context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	f.nextID++
	p.ID = string(rune('a' + f.nextID))
	f.records = append(f.records, p)
	return p, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payroll, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
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

func (f *fakePayrollRepo) Approve(_ context.Context, id string) (payroll.Payroll, error) {
	f.approves++
	for i, r := range f.records {
		if r.ID == id {
			f.records[i].Status = payroll.StatusApproved
			f.records[i].PaymentStatus = payroll.PaymentPaid
			return f.records[i], nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return payroll.ErrPayrollNotFound
}

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

type fakeProjectRepo struct {
	projects []project.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p project.Project) (project.Project, error) {
	return p, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (project.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (f *fakeProjectRepo) List(_ context.Context) ([]project.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeProjectRepo) AddIncome(_ context.Context, e project.IncomeEntry) (project.IncomeEntry, error) {
	return e, nil
}

func (f *fakeProjectRepo) IncreaseBudget(_ context.Context, _ string, _ decimal.Decimal) error {
	return nil
}

type fakeLogRepo struct {
	logs []activitylog.Log
}

func (f *fakeLogRepo) Create(_ context.Context, l activitylog.Log) (activitylog.Log, error) {
	f.logs = append(f.logs, l)
	return l, nil
}

func (f *fakeLogRepo) ListRecent(_ context.Context, _ int) ([]activitylog.Log, error) {
	return f.logs, nil
}

func (f *fakeLogRepo) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

const (
	empAlice = "11111111-1111-1111-1111-111111111111"
	empBob   = "22222222-2222-2222-2222-222222222222"
	objSite  = "33333333-3333-3333-3333-333333333333"
)

func newTestService(payRepo *fakePayrollRepo, logRepo *fakeLogRepo) payroll.PayrollService {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: empAlice, Name: "Alice", Currency: "UZS"},
		{ID: empBob, Name: "Bob", Currency: "UZS"},
	}}
	projRepo := &fakeProjectRepo{projects: []project.Project{
		{ID: objSite, Name: "North Site"},
	}}
	return NewPayrollService(payRepo, empRepo, projRepo, logRepo)
}

func selfActor(employeeID string) user.Actor {
	id := employeeID
	return user.Actor{UserID: "u1", Name: "Alice", Role: user.RoleEmployee, EmployeeID: &id}
}

func adminActor() user.Actor {
	return user.Actor{UserID: "u2", Name: "Boss", Role: user.RoleAdmin}
}

func TestAdminIssuedPaymentLandsApprovedPaid(t *testing.T) {
	logRepo := &fakeLogRepo{}
	svc := newTestService(&fakePayrollRepo{}, logRepo)

	site := objSite
	resp, err := svc.Create(context.Background(), adminActor(), payroll.CreatePayrollRequest{
		EmployeeID: empAlice,
		ObjectID:   &site,
		Amount:     money.FromInt(300000),
		Date:       "2025-03-15",
		Type:       string(payroll.TypeDailyPay),
	})
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusApproved, resp.Status)
	assert.Equal(t, payroll.PaymentPaid, resp.PaymentStatus)
	assert.Equal(t, "2025-03", resp.Month)
	assert.True(t, resp.Amount.Equal(resp.CalculatedSalary.Decimal))
	require.NotNil(t, resp.ObjectName)
	assert.Equal(t, "North Site", *resp.ObjectName)

	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, "Payment issued: Alice, 300000 UZS", logRepo.logs[0].Action)
	assert.Equal(t, "Boss", logRepo.logs[0].Performer)
}

func TestEmployeeAdvanceLandsPendingUnpaid(t *testing.T) {
	logRepo := &fakeLogRepo{}
	svc := newTestService(&fakePayrollRepo{}, logRepo)

	resp, err := svc.Create(context.Background(), selfActor(empAlice), payroll.CreatePayrollRequest{
		EmployeeID: empAlice,
		Amount:     money.FromInt(50000),
		Date:       "2025-03-15",
		Type:       string(payroll.TypeQuickAdd),
	})
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusPending, resp.Status)
	assert.Equal(t, payroll.PaymentUnpaid, resp.PaymentStatus)
	// Advance requests are not audit-logged until an admin acts on them.
	assert.Empty(t, logRepo.logs)
}

func TestEmployeeCannotIssueForOthers(t *testing.T) {
	payRepo := &fakePayrollRepo{}
	svc := newTestService(payRepo, &fakeLogRepo{})

	_, err := svc.Create(context.Background(), selfActor(empBob), payroll.CreatePayrollRequest{
		EmployeeID: empAlice,
		Amount:     money.FromInt(50000),
		Date:       "2025-03-15",
		Type:       string(payroll.TypeQuickAdd),
	})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
	assert.Empty(t, payRepo.records)
}

func TestApprovePendingRecord(t *testing.T) {
	name := "Alice"
	payRepo := &fakePayrollRepo{records: []payroll.Payroll{
		{ID: "a", EmployeeID: empAlice, EmployeeName: &name, Amount: decimal.NewFromInt(50000), Status: payroll.StatusPending, PaymentStatus: payroll.PaymentUnpaid},
	}}
	logRepo := &fakeLogRepo{}
	svc := newTestService(payRepo, logRepo)

	resp, err := svc.Approve(context.Background(), "a", "Boss")
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusApproved, resp.Status)
	assert.Equal(t, payroll.PaymentPaid, resp.PaymentStatus)
	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, "Payroll approved: Alice, 50000", logRepo.logs[0].Action)
}

func TestApproveApprovedIsNoOp(t *testing.T) {
	payRepo := &fakePayrollRepo{records: []payroll.Payroll{
		{ID: "a", EmployeeID: empAlice, Amount: decimal.NewFromInt(50000), Status: payroll.StatusApproved, PaymentStatus: payroll.PaymentPaid},
	}}
	logRepo := &fakeLogRepo{}
	svc := newTestService(payRepo, logRepo)

	resp, err := svc.Approve(context.Background(), "a", "Boss")
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusApproved, resp.Status)
	assert.Zero(t, payRepo.approves)
	assert.Empty(t, logRepo.logs)
}

func TestListScopesNonAdminToOwnRecords(t *testing.T) {
	payRepo := &fakePayrollRepo{records: []payroll.Payroll{
		{ID: "a", EmployeeID: empAlice, Amount: decimal.NewFromInt(100), Status: payroll.StatusApproved},
		{ID: "b", EmployeeID: empBob, Amount: decimal.NewFromInt(200), Status: payroll.StatusApproved},
	}}
	svc := newTestService(payRepo, &fakeLogRepo{})

	other := empBob
	records, err := svc.List(context.Background(), selfActor(empAlice), payroll.Filter{EmployeeID: &other})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, empAlice, records[0].EmployeeID)
}
