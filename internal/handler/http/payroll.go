package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/payroll"
	"github.com/workpoint-hr/hrm-backend-go/internal/handler/http/response"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GetMySalary(w http.ResponseWriter, r *http.Request)
	GetMySalarySlip(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMySalary implements PayrollHandler.
func (h *payrollHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSalary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMySalarySlip implements PayrollHandler. Defaults to the current month.
func (h *payrollHandlerImpl) GetMySalarySlip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := time.Now()
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, ok := validator.IsValidMonth(monthStr)
		if !ok {
			response.BadRequest(w, "month must be a valid month (YYYY-MM)", nil)
			return
		}
		month = parsed
	}

	result, err := h.payrollService.SalarySlip(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSalary implements PayrollHandler. Admin only.
func (h *payrollHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.GetSalary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSalary implements PayrollHandler. Admin only.
func (h *payrollHandlerImpl) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req payroll.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.payrollService.UpdateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated", result)
}
