package postgresql

import (
	"context"
	"time"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
// A partial unique index on (employee_id) WHERE end_time IS NULL backs the
// single-open-record invariant at the storage layer.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, start_time, end_time, break_minutes,
			work_hours, extra_hours, on_leave, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.StartTime, att.EndTime,
		att.BreakMinutes, att.WorkHours, att.ExtraHours, att.OnLeave,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetOpenRecord implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenRecord(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, break_minutes,
			   work_hours, extra_hours, on_leave, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND end_time IS NULL
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.StartTime, &att.EndTime,
		&att.BreakMinutes, &att.WorkHours, &att.ExtraHours, &att.OnLeave,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, break_minutes,
			   work_hours, extra_hours, on_leave, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.StartTime, &att.EndTime,
		&att.BreakMinutes, &att.WorkHours, &att.ExtraHours, &att.OnLeave,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET end_time = $2, break_minutes = $3, work_hours = $4,
			extra_hours = $5, on_leave = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.EndTime, att.BreakMinutes, att.WorkHours,
		att.ExtraHours, att.OnLeave,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.start_time, ar.end_time,
			   ar.break_minutes, ar.work_hours, ar.extra_hours, ar.on_leave,
			   ar.created_at, ar.updated_at,
			   e.name AS employee_name,
			   e.department
		FROM attendance_records ar
		JOIN employees e ON ar.employee_id = e.id
		WHERE ar.date = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.StartTime, &att.EndTime,
			&att.BreakMinutes, &att.WorkHours, &att.ExtraHours, &att.OnLeave,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.Department,
		); err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, break_minutes,
			   work_hours, extra_hours, on_leave, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.StartTime, &att.EndTime,
			&att.BreakMinutes, &att.WorkHours, &att.ExtraHours, &att.OnLeave,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// CountCheckedOutInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountCheckedOutInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	// COUNT(DISTINCT date) so a day can never be counted twice even if the
	// one-record-per-day invariant is somehow violated.
	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND end_time IS NOT NULL
		  AND on_leave = FALSE
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
