package report

// AttendanceStats are today's dashboard counters. Total is the number of
// active employees; half-day records are not counted in any bucket.
type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Leave   int `json:"leave"`
}

// DailySummary is one point of the attendance trend.
type DailySummary struct {
	Date    string `json:"date"`  // YYYY-MM-DD
	Label   string `json:"label"` // e.g. "Jan 02"
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	Leave   int    `json:"leave"`
	Total   int    `json:"total"`
	Rate    int    `json:"rate"` // percent
}

type DepartmentSummary struct {
	Department     string  `json:"department"`
	TotalEmployees int     `json:"total_employees"`
	TotalPresent   int     `json:"total_present"`
	TotalAbsent    int     `json:"total_absent"`
	TotalLate      int     `json:"total_late"`
	TotalLeave     int     `json:"total_leave"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
}

type Performer struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	PresentDays  int     `json:"present_days"`
	TotalDays    int     `json:"total_days"`
	AvgWorkHours float64 `json:"avg_work_hours"`
}

// Summary backs the report header cards.
type Summary struct {
	TotalEmployees    int     `json:"total_employees"`
	AvgAttendanceRate int     `json:"avg_attendance_rate"`
	TotalWorkHours    float64 `json:"total_work_hours"` // across all records, not just the period
	PeriodDays        int     `json:"period_days"`
}
