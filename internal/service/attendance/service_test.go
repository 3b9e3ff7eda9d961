package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/domain/employee"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for i, r := range f.records {
		if r.EmployeeID == a.EmployeeID && r.Date == a.Date {
			a.ID = r.ID
			f.records[i] = a
			return a, nil
		}
	}
	f.nextID++
	a.ID = string(rune('a' + f.nextID))
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeDate(_ context.Context, employeeID string, date string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date == date {
			return r, nil
		}
	}
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

func (f *fakeAttendanceRepo) Approve(_ context.Context, id string) (attendance.Attendance, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records[i].Status = attendance.StatusPresent
			return f.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
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
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out, nil
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

func newTestService(attRepo *fakeAttendanceRepo, logRepo *fakeLogRepo) *AttendanceServiceImpl {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: empAlice, Name: "Alice", Status: employee.StatusActive},
		{ID: empBob, Name: "Bob", Status: employee.StatusInactive},
	}}
	projRepo := &fakeProjectRepo{projects: []project.Project{
		{ID: objSite, Name: "North Site"},
	}}
	svc := NewAttendanceService(attRepo, empRepo, projRepo, logRepo).(*AttendanceServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func selfActor(employeeID string) user.Actor {
	id := employeeID
	return user.Actor{UserID: "u1", Name: "Alice", Role: user.RoleEmployee, EmployeeID: &id}
}

func adminActor() user.Actor {
	return user.Actor{UserID: "u2", Name: "Boss", Role: user.RoleAdmin}
}

func TestSelfCheckInLandsPending(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeLogRepo{})

	resp, err := svc.Upsert(context.Background(), selfActor(empAlice), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-03-15",
		Status:     string(attendance.StatusPresent), // ignored for self check-in
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPending, resp.Status)
	assert.Equal(t, attendance.MarkedByEmployee, resp.MarkedBy)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Alice", *resp.EmployeeName)
}

func TestSelfCheckInRejectsOtherDates(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeLogRepo{})

	_, err := svc.Upsert(context.Background(), selfActor(empAlice), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-03-14",
		Status:     string(attendance.StatusPending),
	})
	assert.ErrorIs(t, err, attendance.ErrCheckInNotToday)
}

func TestSelfCheckInRejectsDuplicate(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "x", EmployeeID: empAlice, Date: "2025-03-15", Status: attendance.StatusPending},
	}}
	svc := newTestService(attRepo, &fakeLogRepo{})

	_, err := svc.Upsert(context.Background(), selfActor(empAlice), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-03-15",
		Status:     string(attendance.StatusPending),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestSelfCheckInOverwritesAbsent(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "x", EmployeeID: empAlice, Date: "2025-03-15", Status: attendance.StatusAbsent, MarkedBy: attendance.MarkedByAdmin},
	}}
	svc := newTestService(attRepo, &fakeLogRepo{})

	resp, err := svc.Upsert(context.Background(), selfActor(empAlice), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-03-15",
		Status:     string(attendance.StatusPending),
	})
	require.NoError(t, err)

	assert.Equal(t, "x", resp.ID)
	assert.Equal(t, attendance.StatusPending, resp.Status)
	assert.Equal(t, attendance.MarkedByEmployee, resp.MarkedBy)
	require.Len(t, attRepo.records, 1)
}

func TestSelfCheckInForSomeoneElseForbidden(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeLogRepo{})

	_, err := svc.Upsert(context.Background(), selfActor(empBob), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-03-15",
		Status:     string(attendance.StatusPending),
	})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestSelfCheckInInactiveEmployee(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeLogRepo{})

	_, err := svc.Upsert(context.Background(), selfActor(empBob), attendance.UpsertAttendanceRequest{
		EmployeeID: empBob,
		Date:       "2025-03-15",
		Status:     string(attendance.StatusPending),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAdminMarksAnyDateAndStatus(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeLogRepo{})

	site := objSite
	resp, err := svc.Upsert(context.Background(), adminActor(), attendance.UpsertAttendanceRequest{
		EmployeeID: empAlice,
		Date:       "2025-02-01",
		Status:     string(attendance.StatusPresent),
		ObjectID:   &site,
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, attendance.MarkedByAdmin, resp.MarkedBy)
	require.NotNil(t, resp.ObjectName)
	assert.Equal(t, "North Site", *resp.ObjectName)
}

func TestListScopesNonAdminToOwnRecords(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-14", Status: attendance.StatusPresent},
		{ID: "b", EmployeeID: empBob, Date: "2025-03-14", Status: attendance.StatusPresent},
	}}
	svc := newTestService(attRepo, &fakeLogRepo{})

	other := empBob
	records, err := svc.List(context.Background(), selfActor(empAlice), attendance.Filter{EmployeeID: &other})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, empAlice, records[0].EmployeeID)
}

func TestListWithoutEmployeeLinkReturnsEmpty(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-14", Status: attendance.StatusPresent},
	}}
	svc := newTestService(attRepo, &fakeLogRepo{})

	actor := user.Actor{UserID: "u3", Role: user.RoleEmployee}
	records, err := svc.List(context.Background(), actor, attendance.Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestApprovePendingRecord(t *testing.T) {
	name := "Alice"
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, EmployeeName: &name, Date: "2025-03-14", Status: attendance.StatusPending},
	}}
	logRepo := &fakeLogRepo{}
	svc := newTestService(attRepo, logRepo)

	resp, err := svc.Approve(context.Background(), "a", "Boss")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.Len(t, logRepo.logs, 1)
	assert.Equal(t, "Attendance approved: Alice (2025-03-14)", logRepo.logs[0].Action)
	assert.Equal(t, "Boss", logRepo.logs[0].Performer)
}

func TestApprovePresentIsNoOp(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-14", Status: attendance.StatusPresent},
	}}
	logRepo := &fakeLogRepo{}
	svc := newTestService(attRepo, logRepo)

	resp, err := svc.Approve(context.Background(), "a", "Boss")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Empty(t, logRepo.logs)
}

func TestApproveAbsentFails(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-14", Status: attendance.StatusAbsent},
	}}
	svc := newTestService(attRepo, &fakeLogRepo{})

	_, err := svc.Approve(context.Background(), "a", "Boss")
	assert.ErrorIs(t, err, attendance.ErrNotPending)
}

func TestDeleteRecordsActivity(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a", EmployeeID: empAlice, Date: "2025-03-14", Status: attendance.StatusPending},
	}}
	logRepo := &fakeLogRepo{}
	svc := newTestService(attRepo, logRepo)

	err := svc.Delete(context.Background(), "a", "Boss")
	require.NoError(t, err)

	assert.Empty(t, attRepo.records)
	require.Len(t, logRepo.logs, 1)
	assert.Contains(t, logRepo.logs[0].Action, "Attendance removed")
}
