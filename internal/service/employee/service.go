package employee

import (
	"context"
	"fmt"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return employee.ListEmployeeResponse{Employees: responses, Count: len(responses)}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}
