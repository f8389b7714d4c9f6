package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ResolveIfPending sets the terminal status and resolution time only if
	// the request is still pending. Returns false when another resolution
	// committed first (compare-and-swap on status).
	ResolveIfPending(ctx context.Context, id string, status LeaveStatus, resolvedAt time.Time) (bool, error)

	// Delete hard-deletes a request from the active ledger.
	Delete(ctx context.Context, id string) error

	// ListByEmployee returns the employee's requests, newest applied first.
	// Empty filter values match everything.
	ListByEmployee(ctx context.Context, employeeID string, filter LeaveFilter) ([]LeaveRequest, error)

	// ListAll returns all requests joined with employee names, newest
	// applied first (admin).
	ListAll(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests whose [start, end]
	// span intersects [from, to]. Pass an empty employeeID to match all
	// employees.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType LeaveType) (LeaveBalance, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)

	// IncrementUsed adds days to the balance's used counter.
	IncrementUsed(ctx context.Context, id string, days int) error
}
