package payroll

import "context"

// SalaryRepository - interface for salary_structures table
type SalaryRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)

	// Upsert creates the employee's structure or replaces all components.
	Upsert(ctx context.Context, salary SalaryStructure) (SalaryStructure, error)
}
