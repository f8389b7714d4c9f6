package payroll

import "time"

// SalaryStructure holds an employee's fixed monthly components, amounts in
// whole currency units. Net pay is derived, never stored.
type SalaryStructure struct {
	EmployeeID           string
	MonthlyWage          int64
	YearlyWage           int64
	BasicSalary          int64
	HRA                  int64
	StandardAllowance    int64
	PerformanceBonus     int64
	LeaveTravelAllowance int64
	FixedAllowance       int64
	EmployeePF           int64
	EmployerPF           int64
	ProfessionalTax      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NetMonthly derives net monthly pay: monthly wage minus the employee PF
// contribution and professional tax. No pro-rating by attendance.
func (s SalaryStructure) NetMonthly() int64 {
	return s.MonthlyWage - s.EmployeePF - s.ProfessionalTax
}
