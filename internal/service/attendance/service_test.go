package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpoint-hr/hrm-backend-go/internal/config"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/dateutil"
)

// fakeTransactor runs the unit of work directly; rollback semantics are the
// database's job and are not under test here.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.nextID++
	att.ID = fmt.Sprintf("att-%d", r.nextID)
	r.records[att.ID] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetOpenRecord(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Open() {
			return att, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Equal(dateutil.DateOf(date)) {
			return att, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	if _, ok := r.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[att.ID] = att
	return nil
}

func (r *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.Date.Equal(dateutil.DateOf(date)) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && dateutil.Covers(from, to, att.Date) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) CountCheckedOutInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	count := 0
	for _, att := range r.records {
		if att.EmployeeID == employeeID && !att.Open() && !att.OnLeave && dateutil.Covers(from, to, att.Date) {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.CurrentStatus = status
	r.employees[id] = e
	return nil
}

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRequestRepo(requests ...leave.LeaveRequest) *fakeLeaveRequestRepo {
	r := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	for _, lr := range requests {
		r.requests[lr.ID] = lr
	}
	return r
}

func (r *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = fmt.Sprintf("leave-%d", len(r.requests)+1)
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	lr, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return lr, nil
}

func (r *fakeLeaveRequestRepo) ResolveIfPending(ctx context.Context, id string, status leave.LeaveStatus, resolvedAt time.Time) (bool, error) {
	lr, ok := r.requests[id]
	if !ok || lr.Status != leave.LeaveStatusPending {
		return false, nil
	}
	lr.Status = status
	lr.ResolvedAt = &resolvedAt
	r.requests[id] = lr
	return true, nil
}

func (r *fakeLeaveRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeLeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if lr.EmployeeID == employeeID && matchesFilter(lr, filter) {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *fakeLeaveRequestRepo) ListAll(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if matchesFilter(lr, filter) {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *fakeLeaveRequestRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if employeeID != "" && lr.EmployeeID != employeeID {
			continue
		}
		if lr.Status != leave.LeaveStatusApproved {
			continue
		}
		if dateutil.OverlapDays(lr.StartDate, lr.EndDate, from, to) > 0 {
			out = append(out, lr)
		}
	}
	return out, nil
}

func matchesFilter(lr leave.LeaveRequest, filter leave.LeaveFilter) bool {
	if filter.Status != "" && lr.Status != filter.Status {
		return false
	}
	if filter.Type != "" && lr.Type != filter.Type {
		return false
	}
	return true
}

type fakeLeaveBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func newFakeLeaveBalanceRepo(balances ...leave.LeaveBalance) *fakeLeaveBalanceRepo {
	r := &fakeLeaveBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
	for _, b := range balances {
		r.balances[b.ID] = b
	}
	return r
}

func (r *fakeLeaveBalanceRepo) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	balance.ID = fmt.Sprintf("bal-%d", len(r.balances)+1)
	r.balances[balance.ID] = balance
	return balance, nil
}

func (r *fakeLeaveBalanceRepo) GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.LeaveBalance, error) {
	for _, b := range r.balances {
		if b.EmployeeID == employeeID && b.Type == leaveType {
			return b, nil
		}
	}
	return leave.LeaveBalance{}, pgx.ErrNoRows
}

func (r *fakeLeaveBalanceRepo) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range r.balances {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeLeaveBalanceRepo) IncrementUsed(ctx context.Context, id string, days int) error {
	b, ok := r.balances[id]
	if !ok {
		return pgx.ErrNoRows
	}
	b.Used += days
	r.balances[id] = b
	return nil
}

var testLeaveConfig = config.LeaveConfig{
	PaidAllotment:   12,
	SickAllotment:   10,
	CasualAllotment: 8,
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, lrRepo *fakeLeaveRequestRepo, lbRepo *fakeLeaveBalanceRepo) *AttendanceServiceImpl {
	return NewAttendanceService(fakeTransactor{}, attRepo, empRepo, lrRepo, lbRepo, 8, testLeaveConfig)
}

func testEmployee(id string) employee.Employee {
	return employee.Employee{ID: id, Name: "Employee " + id, Email: id + "@example.com"}
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("creates open record and marks employee present", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
		svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: at})
		require.NoError(t, err)

		assert.Equal(t, "EMP001", resp.EmployeeID)
		assert.Equal(t, "2026-01-15", resp.Date)
		assert.Equal(t, "checked_in", resp.Status)
		assert.Nil(t, resp.CheckOut)

		emp, err := empRepo.GetByID(ctx, "EMP001")
		require.NoError(t, err)
		assert.Equal(t, employee.StatusPresent, emp.CurrentStatus)
	})

	t.Run("rejects a second check-in while a record is open", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
		svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: at})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: at.Add(time.Hour)})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		assert.Len(t, attRepo.records, 1)
	})

	t.Run("rejects a new check-in after checking out the same day", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
		svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		start := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: start})
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(3 * time.Hour)})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: start.Add(4 * time.Hour)})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		assert.Len(t, attRepo.records, 1)

		// The day counts once in the monthly summary.
		report, err := svc.MonthlyReport(ctx, "EMP001", start)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Summary.PresentDays)
	})

	t.Run("allows check-in on the next day", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
		svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		start := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: start})
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(8 * time.Hour)})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: start.AddDate(0, 0, 1)})
		require.NoError(t, err)
		assert.Len(t, attRepo.records, 2)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	checkIn := func(t *testing.T, svc *AttendanceServiceImpl, employeeID string, at time.Time) {
		t.Helper()
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: employeeID, Timestamp: at})
		require.NoError(t, err)
	}

	t.Run("derives work and extra hours", func(t *testing.T) {
		tests := []struct {
			name          string
			start         time.Time
			end           time.Time
			breakMinutes  int
			wantWorkHours float64
			wantExtra     float64
		}{
			{
				name:          "standard shift with an hour break",
				start:         time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
				end:           time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC),
				breakMinutes:  60,
				wantWorkHours: 8.0,
				wantExtra:     0.0,
			},
			{
				name:          "long day with overtime",
				start:         time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
				end:           time.Date(2026, 1, 15, 19, 30, 0, 0, time.UTC),
				breakMinutes:  30,
				wantWorkHours: 10.0,
				wantExtra:     2.0,
			},
			{
				name:          "break longer than time worked clamps to zero",
				start:         time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
				end:           time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
				breakMinutes:  120,
				wantWorkHours: 0.0,
				wantExtra:     0.0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				attRepo := newFakeAttendanceRepo()
				empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
				svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())
				checkIn(t, svc, "EMP001", tt.start)

				resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{
					EmployeeID:   "EMP001",
					BreakMinutes: tt.breakMinutes,
					Timestamp:    tt.end,
				})
				require.NoError(t, err)

				require.NotNil(t, resp.WorkHours)
				require.NotNil(t, resp.ExtraHours)
				assert.InDelta(t, tt.wantWorkHours, *resp.WorkHours, 0.001)
				assert.InDelta(t, tt.wantExtra, *resp.ExtraHours, 0.001)
				assert.Equal(t, "checked_out", resp.Status)
			})
		}
	})

	t.Run("marks employee absent again", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
		svc := newTestService(attRepo, empRepo, newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())
		start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		checkIn(t, svc, "EMP001", start)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(8 * time.Hour)})
		require.NoError(t, err)

		emp, err := empRepo.GetByID(ctx, "EMP001")
		require.NoError(t, err)
		assert.Equal(t, employee.StatusAbsent, emp.CurrentStatus)
	})

	t.Run("rejects check-out without a check-in", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{
			EmployeeID: "EMP001",
			Timestamp:  time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("rejects a second check-out on the same day", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())
		start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		checkIn(t, svc, "EMP001", start)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(8 * time.Hour)})
		require.NoError(t, err)

		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(9 * time.Hour)})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})

	t.Run("rejects a check-out before the check-in", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())
		start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		checkIn(t, svc, "EMP001", start)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(-time.Hour)})
		assert.ErrorIs(t, err, attendance.ErrInvalidTimeRange)

		// The record stays open.
		open, err := attRepo.GetOpenRecord(ctx, "EMP001")
		require.NoError(t, err)
		assert.True(t, open.Open())
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	asOf := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("present while a record is open", func(t *testing.T) {
		attRepo := newFakeAttendanceRepo()
		svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: asOf.Add(-2 * time.Hour)})
		require.NoError(t, err)

		resp, err := svc.Status(ctx, "EMP001", asOf)
		require.NoError(t, err)
		assert.Equal(t, int(employee.StatusPresent), resp.CurrentStatus)
		assert.Equal(t, "Checked in", resp.StatusDescription)
	})

	t.Run("on leave when an approved request covers the day", func(t *testing.T) {
		lrRepo := newFakeLeaveRequestRepo(leave.LeaveRequest{
			ID:         "leave-1",
			EmployeeID: "EMP001",
			Type:       leave.LeaveTypeSick,
			StartDate:  time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			Status:     leave.LeaveStatusApproved,
		})
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("EMP001")), lrRepo, newFakeLeaveBalanceRepo())

		resp, err := svc.Status(ctx, "EMP001", asOf)
		require.NoError(t, err)
		assert.Equal(t, int(employee.StatusOnLeave), resp.CurrentStatus)
	})

	t.Run("absent otherwise", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		resp, err := svc.Status(ctx, "EMP001", asOf)
		require.NoError(t, err)
		assert.Equal(t, int(employee.StatusAbsent), resp.CurrentStatus)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

		_, err := svc.Status(ctx, "EMP404", asOf)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestDailyReport(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("EMP001"), testEmployee("EMP002"), testEmployee("EMP003"))
	lrRepo := newFakeLeaveRequestRepo(leave.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: "EMP002",
		Type:       leave.LeaveTypePaid,
		StartDate:  day,
		EndDate:    day,
		Status:     leave.LeaveStatusApproved,
	})
	svc := newTestService(attRepo, empRepo, lrRepo, newFakeLeaveBalanceRepo())

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: day.Add(9 * time.Hour)})
	require.NoError(t, err)

	report, err := svc.DailyReport(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15", report.Date)
	assert.Equal(t, 3, report.TotalEmployees)
	assert.Equal(t, 1, report.PresentCount)
	assert.Equal(t, 1, report.OnLeaveCount)
	assert.Equal(t, 1, report.AbsentCount)
	assert.Len(t, report.Records, 3)

	byID := make(map[string]attendance.DailyReportRecord)
	for _, rec := range report.Records {
		byID[rec.EmployeeID] = rec
	}
	assert.Equal(t, "present", byID["EMP001"].Status)
	assert.Equal(t, "on_leave", byID["EMP002"].Status)
	assert.Equal(t, "absent", byID["EMP003"].Status)
}

func TestMonthlyReport(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("EMP001"))
	// Approved leave spilling over the month boundary: only the June days
	// count.
	lrRepo := newFakeLeaveRequestRepo(leave.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: "EMP001",
		Type:       leave.LeaveTypePaid,
		StartDate:  time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		Status:     leave.LeaveStatusApproved,
		Days:       4,
	})
	lbRepo := newFakeLeaveBalanceRepo(
		leave.LeaveBalance{ID: "bal-1", EmployeeID: "EMP001", Type: leave.LeaveTypePaid, Allotted: 12, Used: 4},
		leave.LeaveBalance{ID: "bal-2", EmployeeID: "EMP001", Type: leave.LeaveTypeSick, Allotted: 10, Used: 0},
	)
	svc := newTestService(attRepo, empRepo, lrRepo, lbRepo)

	// Two completed days, one still open.
	for day := 8; day <= 9; day++ {
		start := time.Date(2026, 6, day, 9, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: start})
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "EMP001", Timestamp: start.Add(8 * time.Hour)})
		require.NoError(t, err)
	}
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "EMP001", Timestamp: time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	report, err := svc.MonthlyReport(ctx, "EMP001", month)
	require.NoError(t, err)

	assert.Equal(t, "2026-06", report.Month)
	assert.Equal(t, 2, report.Summary.PresentDays)
	assert.Equal(t, 2, report.Summary.LeaveCount)
	// Paid 8 + sick 10 remaining, plus the full casual allotment of 8 for
	// the not-yet-materialized balance row.
	assert.Equal(t, 26, report.Summary.LeaveLeft)
	assert.Equal(t, 22, report.Summary.TotalWorkDays)
	assert.Len(t, report.Records, 3)
}

func TestMonthlyReportLeaveLeftWithoutBalanceRows(t *testing.T) {
	ctx := context.Background()
	month := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// A fresh employee has no balance rows yet; leave_left is still the sum
	// of the configured allotments.
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("EMP001")), newFakeLeaveRequestRepo(), newFakeLeaveBalanceRepo())

	report, err := svc.MonthlyReport(ctx, "EMP001", month)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.LeaveCount)
	assert.Equal(t, 30, report.Summary.LeaveLeft)
}
