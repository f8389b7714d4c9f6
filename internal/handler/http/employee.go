package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler. Admin only.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler. Admin only.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMe implements EmployeeHandler.
func (h *employeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
