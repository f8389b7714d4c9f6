package employee

import "time"

// Status is the employee's current presence state, derived from attendance
// and leave activity.
type Status int

const (
	StatusAbsent  Status = 0
	StatusPresent Status = 1
	StatusOnLeave Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusOnLeave:
		return "on_leave"
	default:
		return "absent"
	}
}

// Description returns the human-readable status shown in directory and
// dashboard views.
func (s Status) Description() string {
	switch s {
	case StatusPresent:
		return "Checked in"
	case StatusOnLeave:
		return "On leave"
	default:
		return "Checked out"
	}
}

type Employee struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Phone         *string
	Department    *string
	JobPosition   *string
	Manager       *string
	Location      *string
	IsAdmin       bool
	CurrentStatus Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
