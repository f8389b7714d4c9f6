package attendance

import (
	"time"

	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`

	// Timestamp is the server wall-clock time of the request, attached by
	// the handler. It is never accepted from the client.
	Timestamp time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID   string `json:"employee_id"`
	BreakMinutes int    `json:"break_minutes"`

	// Timestamp is attached by the handler, never accepted from the client.
	Timestamp time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.Timestamp.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	CheckIn      *string  `json:"check_in"`
	CheckOut     *string  `json:"check_out"`
	BreakMinutes int      `json:"break_minutes"`
	WorkHours    *float64 `json:"work_hours"`
	ExtraHours   *float64 `json:"extra_hours"`
	OnLeave      bool     `json:"on_leave"`
	Status       string   `json:"status"`
}

type StatusResponse struct {
	EmployeeID        string `json:"employee_id"`
	CurrentStatus     int    `json:"current_status"`
	StatusDescription string `json:"status_description"`
}

// DailyReportRecord is one employee's row in the admin daily view. Employees
// without an attendance record still appear, classified absent or on leave.
type DailyReportRecord struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Department   *string  `json:"department,omitempty"`
	Status       string   `json:"status"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkHours    *float64 `json:"work_hours,omitempty"`
	ExtraHours   *float64 `json:"extra_hours,omitempty"`
}

type DailyReportResponse struct {
	Date           string              `json:"date"`
	TotalEmployees int                 `json:"total_employees"`
	PresentCount   int                 `json:"present_count"`
	AbsentCount    int                 `json:"absent_count"`
	OnLeaveCount   int                 `json:"on_leave_count"`
	Records        []DailyReportRecord `json:"records"`
}

// MonthlySummary mirrors the employee dashboard tiles: days worked, leave
// taken and remaining, and the month's weekday count.
type MonthlySummary struct {
	PresentDays   int `json:"present_days"`
	LeaveCount    int `json:"leave_count"`
	LeaveLeft     int `json:"leave_left"`
	TotalWorkDays int `json:"total_work_days"`
}

type MonthlyReportResponse struct {
	EmployeeID string               `json:"employee_id"`
	Month      string               `json:"month"`
	Summary    MonthlySummary       `json:"summary"`
	Records    []AttendanceResponse `json:"records"`
}
