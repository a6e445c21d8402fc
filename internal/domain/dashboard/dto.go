package dashboard

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
)

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Date            string                 `json:"date"` // YYYY-MM-DD
	Time            string                 `json:"time"` // HH:MM:SS
	Stats           report.AttendanceStats `json:"stats"`
	AttendanceRate  int                    `json:"attendance_rate"`
	ActiveEmployees int                    `json:"active_employees"`
	TodayRecords    []TodayRecord          `json:"today_records"`
}

// TodayRecord is an attendance record joined with the employee it belongs to.
// Name and department are empty for orphaned records.
type TodayRecord struct {
	attendance.Record
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
}
