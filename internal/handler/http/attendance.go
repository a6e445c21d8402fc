package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetTodayAttendance(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance handles GET /attendance?date=YYYY-MM-DD
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.attendanceService.ListByDate(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayAttendance handles GET /attendance/today
func (h *attendanceHandlerImpl) GetTodayAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListByDate(r.Context(), attendance.AttendanceFilter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn handles POST /attendance/check-in
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut handles POST /attendance/check-out
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// SetStatus handles PUT /attendance/status
func (h *attendanceHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance status updated", result)
}
