package employee

import "context"

type EmployeeService interface {
	// List returns the directory projection of all employees (admin).
	List(ctx context.Context) (ListEmployeeResponse, error)

	// Get returns a single employee's directory projection.
	Get(ctx context.Context, id string) (EmployeeResponse, error)
}
