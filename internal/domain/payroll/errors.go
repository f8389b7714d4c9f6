package payroll

import "errors"

var (
	ErrSalaryNotFound = errors.New("salary structure not found")
)
