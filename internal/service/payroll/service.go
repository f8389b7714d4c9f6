package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/payroll"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/dateutil"
)

type PayrollServiceImpl struct {
	payroll.SalaryRepository
	attendanceRecords attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	salaryRepository payroll.SalaryRepository,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		SalaryRepository:   salaryRepository,
		attendanceRecords:  attendanceRepository,
		EmployeeRepository: employeeRepository,
	}
}

// GetSalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetSalary(ctx context.Context, employeeID string) (payroll.SalaryResponse, error) {
	salary, err := p.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return payroll.ToResponse(salary), nil
}

// UpdateSalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) UpdateSalary(ctx context.Context, req payroll.UpdateSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	if _, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SalaryResponse{}, err
	}

	saved, err := p.SalaryRepository.Upsert(ctx, payroll.SalaryStructure{
		EmployeeID:           req.EmployeeID,
		MonthlyWage:          req.MonthlyWage,
		YearlyWage:           req.YearlyWage,
		BasicSalary:          req.BasicSalary,
		HRA:                  req.HRA,
		StandardAllowance:    req.StandardAllowance,
		PerformanceBonus:     req.PerformanceBonus,
		LeaveTravelAllowance: req.LeaveTravelAllowance,
		FixedAllowance:       req.FixedAllowance,
		EmployeePF:           req.EmployeePF,
		EmployerPF:           req.EmployerPF,
		ProfessionalTax:      req.ProfessionalTax,
	})
	if err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to save salary structure: %w", err)
	}

	return payroll.ToResponse(saved), nil
}

// NetMonthlySalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) NetMonthlySalary(ctx context.Context, employeeID string) (int64, error) {
	salary, err := p.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return salary.NetMonthly(), nil
}

// PayableDays implements payroll.PayrollService.
func (p *PayrollServiceImpl) PayableDays(ctx context.Context, employeeID string, month time.Time) (int, error) {
	first, last := dateutil.MonthSpan(month)
	count, err := p.attendanceRecords.CountCheckedOutInRange(ctx, employeeID, first, last)
	if err != nil {
		return 0, fmt.Errorf("failed to count payable days: %w", err)
	}
	return count, nil
}

// SalarySlip implements payroll.PayrollService.
func (p *PayrollServiceImpl) SalarySlip(ctx context.Context, employeeID string, month time.Time) (payroll.SalarySlipResponse, error) {
	salary, err := p.SalaryRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	payableDays, err := p.PayableDays(ctx, employeeID, month)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	return payroll.SalarySlipResponse{
		SalaryResponse: payroll.ToResponse(salary),
		Month:          month.Format("2006-01"),
		PayableDays:    payableDays,
	}, nil
}
