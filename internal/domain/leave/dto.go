package leave

import (
	"time"

	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	// AppliedAt is attached by the handler, never accepted from the client.
	AppliedAt time.Time `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !LeaveType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, sick, casual, unpaid",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveFilter narrows list queries. Zero values match everything.
type LeaveFilter struct {
	Status LeaveStatus
	Type   LeaveType
}

type LeaveResponse struct {
	ID           string  `json:"leave_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Status       string  `json:"status"`
	AppliedAt    string  `json:"applied_at"`
}

func ToResponse(r LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         string(r.Type),
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Days:         r.Days,
		Status:       string(r.Status),
		AppliedAt:    r.AppliedAt.Format(time.RFC3339),
	}
}

type ListLeaveResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
	Count  int             `json:"count"`
}

type BalanceResponse struct {
	Type      string `json:"leave_type"`
	Allotted  int    `json:"allotted"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

type ListBalanceResponse struct {
	EmployeeID string            `json:"employee_id"`
	Balances   []BalanceResponse `json:"balances"`
}
