package response

import (
	"errors"
	"net/http"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/auth"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/payroll"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "Check-out time is before check-in time", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "End date is before start date", nil)
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyResolved):
		Conflict(w, "Leave request already approved or rejected")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary structure not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
