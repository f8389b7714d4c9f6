package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/config"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/dateutil"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository

	allotments map[leave.LeaveType]int
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
	cfg config.LeaveConfig,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		EmployeeRepository:     employeeRepository,
		allotments: map[leave.LeaveType]int{
			leave.LeaveTypePaid:   cfg.PaidAllotment,
			leave.LeaveTypeSick:   cfg.SickAllotment,
			leave.LeaveTypeCasual: cfg.CasualAllotment,
		},
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, startOK := validator.IsValidDate(req.StartDate)
	endDate, endOK := validator.IsValidDate(req.EndDate)
	if !startOK || !endOK {
		return leave.LeaveResponse{}, leave.ErrInvalidRange
	}
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidRange
	}
	days := dateutil.InclusiveDays(startDate, endDate)
	leaveType := leave.LeaveType(req.Type)

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Optimistic balance check at submit time. The balance itself is only
	// decremented on approval.
	if leaveType.BalanceTracked() {
		balance, err := s.ensureBalance(ctx, req.EmployeeID, leaveType)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if days > balance.Remaining() {
			return leave.LeaveResponse{}, fmt.Errorf("%w: requested %d days, %d remaining",
				leave.ErrInsufficientBalance, days, balance.Remaining())
		}
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Status:     leave.LeaveStatusPending,
		AppliedAt:  req.AppliedAt,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService. The status transition and the
// balance decrement commit or roll back together.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID string) (leave.LeaveResponse, error) {
	var approved leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, leaveID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveAlreadyResolved
		}

		resolvedAt := time.Now()
		ok, err := s.LeaveRequestRepository.ResolveIfPending(ctx, leaveID, leave.LeaveStatusApproved, resolvedAt)
		if err != nil {
			return fmt.Errorf("failed to resolve leave request: %w", err)
		}
		if !ok {
			// A concurrent resolution committed first.
			return leave.ErrLeaveAlreadyResolved
		}

		if request.Type.BalanceTracked() {
			balance, err := s.ensureBalance(ctx, request.EmployeeID, request.Type)
			if err != nil {
				return err
			}
			// Decrement is clamped to the remaining balance so used never
			// exceeds allotted.
			decrement := request.Days
			if remaining := balance.Remaining(); decrement > remaining {
				decrement = remaining
			}
			if decrement > 0 {
				if err := s.LeaveBalanceRepository.IncrementUsed(ctx, balance.ID, decrement); err != nil {
					return fmt.Errorf("failed to decrement leave balance: %w", err)
				}
			}
		}

		request.Status = leave.LeaveStatusApproved
		request.ResolvedAt = &resolvedAt
		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(approved), nil
}

// Reject implements leave.LeaveService. Rejected requests are removed from
// the active ledger.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, leaveID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveAlreadyResolved
		}

		ok, err := s.LeaveRequestRepository.ResolveIfPending(ctx, leaveID, leave.LeaveStatusRejected, time.Now())
		if err != nil {
			return fmt.Errorf("failed to resolve leave request: %w", err)
		}
		if !ok {
			return leave.ErrLeaveAlreadyResolved
		}

		if err := s.LeaveRequestRepository.Delete(ctx, leaveID); err != nil {
			return fmt.Errorf("failed to delete rejected leave request: %w", err)
		}
		return nil
	})
}

// ListForEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests), nil
}

// ListForAdmin implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForAdmin(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toListResponse(requests), nil
}

// Balances implements leave.LeaveService.
func (s *LeaveServiceImpl) Balances(ctx context.Context, employeeID string) (leave.ListBalanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return leave.ListBalanceResponse{}, err
	}

	response := leave.ListBalanceResponse{
		EmployeeID: employeeID,
		Balances:   make([]leave.BalanceResponse, 0, len(s.allotments)),
	}
	for _, leaveType := range []leave.LeaveType{leave.LeaveTypePaid, leave.LeaveTypeSick, leave.LeaveTypeCasual} {
		balance, err := s.ensureBalance(ctx, employeeID, leaveType)
		if err != nil {
			return leave.ListBalanceResponse{}, err
		}
		response.Balances = append(response.Balances, leave.BalanceResponse{
			Type:      string(leaveType),
			Allotted:  balance.Allotted,
			Used:      balance.Used,
			Remaining: balance.Remaining(),
		})
	}
	return response, nil
}

// ensureBalance lazily seeds the employee's balance row for a tracked type
// with the configured annual allotment.
func (s *LeaveServiceImpl) ensureBalance(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.LeaveBalance, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeAndType(ctx, employeeID, leaveType)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	created, err := s.LeaveBalanceRepository.Create(ctx, leave.LeaveBalance{
		EmployeeID: employeeID,
		Type:       leaveType,
		Allotted:   s.allotments[leaveType],
	})
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to seed leave balance: %w", err)
	}
	return created, nil
}

func toListResponse(requests []leave.LeaveRequest) leave.ListLeaveResponse {
	leaves := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		leaves = append(leaves, leave.ToResponse(req))
	}
	return leave.ListLeaveResponse{Leaves: leaves, Count: len(leaves)}
}
