package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, email, password_hash, phone, department, job_position,
	manager, location, is_admin, current_status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Phone, &e.Department,
		&e.JobPosition, &e.Manager, &e.Location, &e.IsAdmin,
		&e.CurrentStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, password_hash, phone, department, job_position,
			manager, location, is_admin, current_status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Email,
		newEmployee.PasswordHash, newEmployee.Phone, newEmployee.Department,
		newEmployee.JobPosition, newEmployee.Manager, newEmployee.Location,
		newEmployee.IsAdmin, newEmployee.CurrentStatus,
	))
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET current_status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
