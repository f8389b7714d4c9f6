package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/leave"
	"github.com/workpoint-hr/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit implements LeaveHandler. The applied-at timestamp is the server's
// wall clock, never client-supplied.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.AppliedAt = time.Now()

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// Approve implements LeaveHandler. Admin only.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler. Admin only.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := h.leaveService.Reject(r.Context(), leaveID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter, ok := parseLeaveFilter(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ListForEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements LeaveHandler. Admin only.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseLeaveFilter(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ListForAdmin(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Balances implements LeaveHandler.
func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Balances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseLeaveFilter(w http.ResponseWriter, r *http.Request) (leave.LeaveFilter, bool) {
	var filter leave.LeaveFilter

	if status := r.URL.Query().Get("status"); status != "" {
		switch leave.LeaveStatus(status) {
		case leave.LeaveStatusPending, leave.LeaveStatusApproved, leave.LeaveStatusRejected:
			filter.Status = leave.LeaveStatus(status)
		default:
			response.BadRequest(w, "status must be one of pending, approved, rejected", nil)
			return filter, false
		}
	}

	if leaveType := r.URL.Query().Get("type"); leaveType != "" {
		if !leave.LeaveType(leaveType).Valid() {
			response.BadRequest(w, "type must be one of paid, sick, casual, unpaid", nil)
			return filter, false
		}
		filter.Type = leave.LeaveType(leaveType)
	}

	return filter, true
}
