package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

// BalanceTracked reports whether the type draws from an annual allotment.
// Unpaid leave is never balance-checked.
func (t LeaveType) BalanceTracked() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeCasual:
		return true
	}
	return false
}

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeCasual, LeaveTypeUnpaid:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest entity. Status moves Pending -> Approved or Pending ->
// Rejected, both terminal. Rejected requests are removed from the active
// ledger.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time

	// Days is the inclusive-both-ends span: end - start + 1.
	Days int

	Status     LeaveStatus
	AppliedAt  time.Time
	ResolvedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// LeaveBalance entity, one per employee per balance-tracked type. Used is
// incremented only when a request is approved and never exceeds Allotted.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	Allotted   int
	Used       int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining returns the days left against the annual allotment.
func (b LeaveBalance) Remaining() int {
	remaining := b.Allotted - b.Used
	if remaining < 0 {
		return 0
	}
	return remaining
}
