package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetOpenRecord retrieves the record with a check-in but no check-out
	// for the employee. At most one such record exists at any time.
	// Returns pgx.ErrNoRows when the employee has no open record.
	GetOpenRecord(ctx context.Context, employeeID string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// specific calendar date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// ListByDate retrieves all records for a calendar date, joined with
	// employee name and department for admin views.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployeeAndRange retrieves an employee's records with
	// date in [from, to], ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// CountCheckedOutInRange counts the employee's completed (checked-out,
	// not on-leave) records with date in [from, to].
	CountCheckedOutInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
