package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/config"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leaveRequests leave.LeaveRequestRepository
	leaveBalances leave.LeaveBalanceRepository

	standardShiftHours float64
	allotments         map[leave.LeaveType]int
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	standardShiftHours float64,
	leaveConfig config.LeaveConfig,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		leaveRequests:        leaveRequestRepository,
		leaveBalances:        leaveBalanceRepository,
		standardShiftHours:   standardShiftHours,
		allotments: map[leave.LeaveType]int{
			leave.LeaveTypePaid:   leaveConfig.PaidAllotment,
			leave.LeaveTypeSick:   leaveConfig.SickAllotment,
			leave.LeaveTypeCasual: leaveConfig.CasualAllotment,
		},
	}
}

// roundHours rounds to one decimal for presentation. Hour maths upstream of
// the rounding stays at full precision.
func roundHours(h float64) float64 {
	return math.Round(h*10) / 10
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func recordStatus(att attendance.Attendance) string {
	switch {
	case att.OnLeave:
		return "on_leave"
	case att.Open():
		return "checked_in"
	default:
		return "checked_out"
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	checkIn := att.StartTime
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      timePtrToString(&checkIn),
		CheckOut:     timePtrToString(att.EndTime),
		BreakMinutes: att.BreakMinutes,
		WorkHours:    att.WorkHours,
		ExtraHours:   att.ExtraHours,
		OnLeave:      att.OnLeave,
		Status:       recordStatus(att),
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var created attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := a.AttendanceRepository.GetOpenRecord(ctx, req.EmployeeID)
		if err == nil {
			return attendance.ErrAlreadyCheckedIn
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up open record: %w", err)
		}

		// One record per employee per calendar day: a record already closed
		// today blocks a second check-in, otherwise the day would be counted
		// twice in monthly and payroll aggregation.
		_, err = a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, dateutil.DateOf(req.Timestamp))
		if err == nil {
			return attendance.ErrAlreadyCheckedIn
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up attendance record: %w", err)
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       dateutil.DateOf(req.Timestamp),
			StartTime:  req.Timestamp,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}

		if err := a.EmployeeRepository.UpdateStatus(ctx, req.EmployeeID, employee.StatusPresent); err != nil {
			return fmt.Errorf("failed to update employee status: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var closed attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		att, err := a.AttendanceRepository.GetOpenRecord(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return a.classifyMissingOpenRecord(ctx, req)
			}
			return fmt.Errorf("failed to look up open record: %w", err)
		}

		if req.Timestamp.Before(att.StartTime) {
			return attendance.ErrInvalidTimeRange
		}

		workedHours := req.Timestamp.Sub(att.StartTime).Hours() - float64(req.BreakMinutes)/60
		if workedHours < 0 {
			workedHours = 0
		}
		workHours := roundHours(workedHours)
		extraHours := roundHours(math.Max(0, workHours-a.standardShiftHours))

		end := req.Timestamp
		att.EndTime = &end
		att.BreakMinutes = req.BreakMinutes
		att.WorkHours = &workHours
		att.ExtraHours = &extraHours

		if err := a.AttendanceRepository.Update(ctx, att); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}

		if err := a.EmployeeRepository.UpdateStatus(ctx, req.EmployeeID, employee.StatusAbsent); err != nil {
			return fmt.Errorf("failed to update employee status: %w", err)
		}

		closed = att
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(closed), nil
}

// classifyMissingOpenRecord distinguishes "never checked in" from "already
// checked out today" so the caller gets the right rejection.
func (a *AttendanceServiceImpl) classifyMissingOpenRecord(ctx context.Context, req attendance.CheckOutRequest) error {
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, dateutil.DateOf(req.Timestamp))
	if err == nil && !existing.Open() {
		return attendance.ErrAlreadyCheckedOut
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to look up attendance record: %w", err)
	}
	return attendance.ErrNotCheckedIn
}

// Status implements attendance.AttendanceService. The status is derived
// from attendance and leave facts, never from cached client state.
func (a *AttendanceServiceImpl) Status(ctx context.Context, employeeID string, asOf time.Time) (attendance.StatusResponse, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.StatusResponse{}, err
	}

	status := employee.StatusAbsent

	_, err := a.AttendanceRepository.GetOpenRecord(ctx, employeeID)
	switch {
	case err == nil:
		status = employee.StatusPresent
	case errors.Is(err, pgx.ErrNoRows):
		onLeave, err := a.hasApprovedLeaveOn(ctx, employeeID, asOf)
		if err != nil {
			return attendance.StatusResponse{}, err
		}
		if onLeave {
			status = employee.StatusOnLeave
		}
	default:
		return attendance.StatusResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}

	return attendance.StatusResponse{
		EmployeeID:        employeeID,
		CurrentStatus:     int(status),
		StatusDescription: status.Description(),
	}, nil
}

func (a *AttendanceServiceImpl) hasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	day := dateutil.DateOf(date)
	leaves, err := a.leaveRequests.ListApprovedOverlapping(ctx, employeeID, day, day)
	if err != nil {
		return false, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	return len(leaves) > 0, nil
}

// DailyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyReport(ctx context.Context, date time.Time) (attendance.DailyReportResponse, error) {
	day := dateutil.DateOf(date)

	employees, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return attendance.DailyReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailyReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	recordsByEmployee := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = rec
	}

	approved, err := a.leaveRequests.ListApprovedOverlapping(ctx, "", day, day)
	if err != nil {
		return attendance.DailyReportResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	onLeave := make(map[string]bool, len(approved))
	for _, lr := range approved {
		onLeave[lr.EmployeeID] = true
	}

	report := attendance.DailyReportResponse{
		Date:           day.Format("2006-01-02"),
		TotalEmployees: len(employees),
		Records:        make([]attendance.DailyReportRecord, 0, len(employees)),
	}

	for _, emp := range employees {
		row := attendance.DailyReportRecord{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Department:   emp.Department,
		}

		if rec, ok := recordsByEmployee[emp.ID]; ok {
			checkIn := rec.StartTime
			row.CheckIn = timePtrToString(&checkIn)
			row.CheckOut = timePtrToString(rec.EndTime)
			row.WorkHours = rec.WorkHours
			row.ExtraHours = rec.ExtraHours
			if rec.OnLeave {
				row.Status = "on_leave"
				report.OnLeaveCount++
			} else {
				row.Status = "present"
				report.PresentCount++
			}
		} else if onLeave[emp.ID] {
			row.Status = "on_leave"
			report.OnLeaveCount++
		} else {
			row.Status = "absent"
			report.AbsentCount++
		}

		report.Records = append(report.Records, row)
	}

	return report, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, employeeID string, month time.Time) (attendance.MonthlyReportResponse, error) {
	first, last := dateutil.MonthSpan(month)

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, first, last)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.MonthlySummary{
		TotalWorkDays: dateutil.WorkingDaysInMonth(month),
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
		if !rec.Open() && !rec.OnLeave {
			summary.PresentDays++
		}
	}

	approved, err := a.leaveRequests.ListApprovedOverlapping(ctx, employeeID, first, last)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	for _, lr := range approved {
		summary.LeaveCount += dateutil.OverlapDays(lr.StartDate, lr.EndDate, first, last)
	}

	// Balance rows materialize lazily, so a tracked type with no row still
	// has its full configured allotment left.
	balances, err := a.leaveBalances.GetByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to get leave balances: %w", err)
	}
	byType := make(map[leave.LeaveType]leave.LeaveBalance, len(balances))
	for _, b := range balances {
		byType[b.Type] = b
	}
	for leaveType, allotted := range a.allotments {
		if b, ok := byType[leaveType]; ok {
			summary.LeaveLeft += b.Remaining()
		} else {
			summary.LeaveLeft += allotted
		}
	}

	return attendance.MonthlyReportResponse{
		EmployeeID: employeeID,
		Month:      month.Format("2006-01"),
		Summary:    summary,
		Records:    responses,
	}, nil
}
