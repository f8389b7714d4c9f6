package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/payroll"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// GetByEmployeeID implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, monthly_wage, yearly_wage, basic_sal, hra, sa,
			   perf_bonus, lta, fa, pf1, pf2, prof_tax, created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.EmployeeID, &s.MonthlyWage, &s.YearlyWage, &s.BasicSalary,
		&s.HRA, &s.StandardAllowance, &s.PerformanceBonus,
		&s.LeaveTravelAllowance, &s.FixedAllowance,
		&s.EmployeePF, &s.EmployerPF, &s.ProfessionalTax,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryNotFound
		}
		return payroll.SalaryStructure{}, err
	}
	return s, nil
}

// Upsert implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, salary payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			employee_id, monthly_wage, yearly_wage, basic_sal, hra, sa,
			perf_bonus, lta, fa, pf1, pf2, prof_tax, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			monthly_wage = EXCLUDED.monthly_wage,
			yearly_wage = EXCLUDED.yearly_wage,
			basic_sal = EXCLUDED.basic_sal,
			hra = EXCLUDED.hra,
			sa = EXCLUDED.sa,
			perf_bonus = EXCLUDED.perf_bonus,
			lta = EXCLUDED.lta,
			fa = EXCLUDED.fa,
			pf1 = EXCLUDED.pf1,
			pf2 = EXCLUDED.pf2,
			prof_tax = EXCLUDED.prof_tax,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		salary.EmployeeID, salary.MonthlyWage, salary.YearlyWage,
		salary.BasicSalary, salary.HRA, salary.StandardAllowance,
		salary.PerformanceBonus, salary.LeaveTravelAllowance,
		salary.FixedAllowance, salary.EmployeePF, salary.EmployerPF,
		salary.ProfessionalTax,
	).Scan(&salary.CreatedAt, &salary.UpdatedAt)
	if err != nil {
		return payroll.SalaryStructure{}, err
	}
	return salary, nil
}
