package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state machine violations
	ErrAlreadyCheckedIn  = errors.New("you have already checked in")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrInvalidTimeRange  = errors.New("check-out time is before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
