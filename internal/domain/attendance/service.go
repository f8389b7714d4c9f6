package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens an attendance record for the employee. Fails with
	// ErrAlreadyCheckedIn while an open record exists.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the employee's open record and derives work and
	// extra hours. Terminal for the record.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Status returns the employee's derived presence status as of the
	// given time. Pure read.
	Status(ctx context.Context, employeeID string, asOf time.Time) (StatusResponse, error)

	// DailyReport returns every employee's classification for the date
	// plus present/absent/on-leave counts (admin).
	DailyReport(ctx context.Context, date time.Time) (DailyReportResponse, error)

	// MonthlyReport returns an employee's records for the month plus the
	// summary tile values (self-service).
	MonthlyReport(ctx context.Context, employeeID string, month time.Time) (MonthlyReportResponse, error)
}
