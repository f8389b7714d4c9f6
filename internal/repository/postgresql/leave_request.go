package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, days,
			status, applied_at, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type, request.StartDate, request.EndDate,
		request.Days, request.Status, request.AppliedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, days,
			   status, applied_at, resolved_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.Days, &req.Status, &req.AppliedAt, &req.ResolvedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// ResolveIfPending implements leave.LeaveRequestRepository. The status guard
// in the WHERE clause makes concurrent resolutions race-safe: the first
// commit wins and the loser sees zero rows affected.
func (r *leaveRequestRepositoryImpl) ResolveIfPending(ctx context.Context, id string, status leave.LeaveStatus, resolvedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, resolved_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	tag, err := q.Exec(ctx, query, id, status, resolvedAt, leave.LeaveStatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, days,
			   status, applied_at, resolved_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR leave_type = $3)
		ORDER BY applied_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, string(filter.Status), string(filter.Type))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
			&req.Days, &req.Status, &req.AppliedAt, &req.ResolvedAt,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date,
			   lr.end_date, lr.days, lr.status, lr.applied_at,
			   lr.resolved_at, lr.created_at, lr.updated_at,
			   e.name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE ($1 = '' OR lr.status = $1)
		  AND ($2 = '' OR lr.leave_type = $2)
		ORDER BY lr.applied_at DESC
	`

	rows, err := q.Query(ctx, query, string(filter.Status), string(filter.Type))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
			&req.Days, &req.Status, &req.AppliedAt, &req.ResolvedAt,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, days,
			   status, applied_at, resolved_at, created_at, updated_at
		FROM leave_requests
		WHERE status = $1
		  AND ($2 = '' OR employee_id = $2)
		  AND start_date <= $4
		  AND end_date >= $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, leave.LeaveStatusApproved, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
			&req.Days, &req.Status, &req.AppliedAt, &req.ResolvedAt,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
