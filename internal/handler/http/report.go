package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/handler/http/response"
)

type ReportHandler interface {
	// Full report for a period
	GetReport(w http.ResponseWriter, r *http.Request)

	// Per-day attendance series
	GetAttendanceTrend(w http.ResponseWriter, r *http.Request)

	// Per-department rollup
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)

	// Leaderboard
	GetTopPerformers(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// parseReportRequest reads period, start_date, end_date, department and limit
// from the query string.
func parseReportRequest(r *http.Request) (report.ReportRequest, bool) {
	query := r.URL.Query()

	req := report.ReportRequest{
		Period:     report.Period(query.Get("period")),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		Department: query.Get("department"),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return req, false
		}
		req.Limit = limit
	}

	return req, true
}

// GetReport handles GET /reports
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	req, ok := parseReportRequest(r)
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}

	result, err := h.reportService.GetReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceTrend handles GET /reports/trend
func (h *reportHandlerImpl) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	req, ok := parseReportRequest(r)
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}

	result, err := h.reportService.GetAttendanceTrend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentStats handles GET /reports/departments
func (h *reportHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	req, ok := parseReportRequest(r)
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}

	result, err := h.reportService.GetDepartmentStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTopPerformers handles GET /reports/top-performers
func (h *reportHandlerImpl) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	req, ok := parseReportRequest(r)
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}

	result, err := h.reportService.GetTopPerformers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
