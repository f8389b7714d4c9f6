package http

import (
	"net/http"
	"time"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/attendance"
	"github.com/workpoint-hr/hrm-backend-go/internal/handler/http/response"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler. The check-in timestamp is the
// server's wall clock, never client-supplied.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.CheckInRequest{
		EmployeeID: employeeID,
		Timestamp:  time.Now(),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Body carries only break_minutes and may be omitted entirely.
	var req attendance.CheckOutRequest
	if err := decodeJSONBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.Timestamp = time.Now()

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Status(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyReport implements AttendanceHandler. Admin only; defaults to today
// when no date is given.
func (h *attendanceHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.DailyReport(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyReport implements AttendanceHandler. Self-service; defaults to the
// current month.
func (h *attendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.attendanceService.MonthlyReport(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
