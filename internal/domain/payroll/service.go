package payroll

import (
	"context"
	"time"
)

// PayrollService combines the fixed salary structure with a period's
// attendance outcome. Read paths are failure-free except for not-found.
type PayrollService interface {
	GetSalary(ctx context.Context, employeeID string) (SalaryResponse, error)

	// UpdateSalary replaces the employee's structure (admin).
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)

	// NetMonthlySalary derives monthly_wage - pf1 - prof_tax.
	NetMonthlySalary(ctx context.Context, employeeID string) (int64, error)

	// PayableDays counts the month's days classified present (a completed
	// attendance record).
	PayableDays(ctx context.Context, employeeID string, month time.Time) (int, error)

	// SalarySlip is the presentation-ready monthly projection.
	SalarySlip(ctx context.Context, employeeID string, month time.Time) (SalarySlipResponse, error)
}
