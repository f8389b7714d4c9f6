package payroll

import (
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

type UpdateSalaryRequest struct {
	EmployeeID           string `json:"employee_id"`
	MonthlyWage          int64  `json:"monthly_wage"`
	YearlyWage           int64  `json:"yearly_wage"`
	BasicSalary          int64  `json:"basic_sal"`
	HRA                  int64  `json:"hra"`
	StandardAllowance    int64  `json:"sa"`
	PerformanceBonus     int64  `json:"perf_bonus"`
	LeaveTravelAllowance int64  `json:"lta"`
	FixedAllowance       int64  `json:"fa"`
	EmployeePF           int64  `json:"pf1"`
	EmployerPF           int64  `json:"pf2"`
	ProfessionalTax      int64  `json:"prof_tax"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	amounts := map[string]int64{
		"monthly_wage": r.MonthlyWage,
		"yearly_wage":  r.YearlyWage,
		"basic_sal":    r.BasicSalary,
		"hra":          r.HRA,
		"sa":           r.StandardAllowance,
		"perf_bonus":   r.PerformanceBonus,
		"lta":          r.LeaveTravelAllowance,
		"fa":           r.FixedAllowance,
		"pf1":          r.EmployeePF,
		"pf2":          r.EmployerPF,
		"prof_tax":     r.ProfessionalTax,
	}
	for field, amount := range amounts {
		if amount < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SalaryResponse exposes the eleven structure fields plus the derived net.
type SalaryResponse struct {
	EmployeeID           string `json:"employee_id"`
	MonthlyWage          int64  `json:"monthly_wage"`
	YearlyWage           int64  `json:"yearly_wage"`
	BasicSalary          int64  `json:"basic_sal"`
	HRA                  int64  `json:"hra"`
	StandardAllowance    int64  `json:"sa"`
	PerformanceBonus     int64  `json:"perf_bonus"`
	LeaveTravelAllowance int64  `json:"lta"`
	FixedAllowance       int64  `json:"fa"`
	EmployeePF           int64  `json:"pf1"`
	EmployerPF           int64  `json:"pf2"`
	ProfessionalTax      int64  `json:"prof_tax"`
	NetMonthlySalary     int64  `json:"net_monthly_salary"`
}

func ToResponse(s SalaryStructure) SalaryResponse {
	return SalaryResponse{
		EmployeeID:           s.EmployeeID,
		MonthlyWage:          s.MonthlyWage,
		YearlyWage:           s.YearlyWage,
		BasicSalary:          s.BasicSalary,
		HRA:                  s.HRA,
		StandardAllowance:    s.StandardAllowance,
		PerformanceBonus:     s.PerformanceBonus,
		LeaveTravelAllowance: s.LeaveTravelAllowance,
		FixedAllowance:       s.FixedAllowance,
		EmployeePF:           s.EmployeePF,
		EmployerPF:           s.EmployerPF,
		ProfessionalTax:      s.ProfessionalTax,
		NetMonthlySalary:     s.NetMonthly(),
	}
}

// SalarySlipResponse combines the structure with the month's attendance
// outcome.
type SalarySlipResponse struct {
	SalaryResponse
	Month       string `json:"month"`
	PayableDays int    `json:"payable_days"`
}
