package postgresql

import (
	"context"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type, allotted, used, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.Type, balance.Allotted, balance.Used,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetByEmployeeAndType implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndType(ctx context.Context, employeeID string, leaveType leave.LeaveType) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, allotted, used, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveType).Scan(
		&balance.ID, &balance.EmployeeID, &balance.Type,
		&balance.Allotted, &balance.Used,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, allotted, used, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var balance leave.LeaveBalance
		if err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.Type,
			&balance.Allotted, &balance.Used,
			&balance.CreatedAt, &balance.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, rows.Err()
}

// IncrementUsed implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) IncrementUsed(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, id, days)
	return err
}
