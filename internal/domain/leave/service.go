package leave

import (
	"context"
)

type LeaveService interface {
	// Submit creates a pending request after range and balance checks.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// Approve transitions a pending request to approved and decrements the
	// matching balance atomically (admin).
	Approve(ctx context.Context, leaveID string) (LeaveResponse, error)

	// Reject removes a pending request from the active ledger (admin).
	Reject(ctx context.Context, leaveID string) error

	// ListForEmployee returns the employee's own requests.
	ListForEmployee(ctx context.Context, employeeID string, filter LeaveFilter) (ListLeaveResponse, error)

	// ListForAdmin returns all requests across employees.
	ListForAdmin(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Balances returns the employee's per-type allotted/used/remaining.
	Balances(ctx context.Context, employeeID string) (ListBalanceResponse, error)
}
