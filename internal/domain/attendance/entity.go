package attendance

import (
	"time"
)

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	StartTime    time.Time
	EndTime      *time.Time
	BreakMinutes int
	WorkHours    *float64
	ExtraHours   *float64
	OnLeave      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
	Department   *string
}

// Open reports whether the record has a check-in but no check-out yet.
func (a Attendance) Open() bool {
	return a.EndTime == nil
}
