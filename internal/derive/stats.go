package derive

import (
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

// AttendanceStats counts today's records per status against the number of
// active employees.
func AttendanceStats(s store.State, c clock.Clock) report.AttendanceStats {
	return StatsOn(s, clock.Today(c))
}

// StatsOn is AttendanceStats for an explicit date. Half-day records fall in
// none of the buckets.
func StatsOn(s store.State, date string) report.AttendanceStats {
	stats := report.AttendanceStats{Total: len(ActiveEmployees(s))}
	for _, r := range s.AttendanceRecords {
		if r.Date != date {
			continue
		}
		switch r.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusLeave:
			stats.Leave++
		}
	}
	return stats
}

// AttendanceRate is round(present / total * 100), 0 with no active employees.
func AttendanceRate(stats report.AttendanceStats) int {
	return percent(stats.Present, stats.Total)
}
