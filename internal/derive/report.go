package derive

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
	"github.com/shopspring/decimal"
)

type statusCounts struct {
	present, absent, late, leave int
}

func (c *statusCounts) add(status attendance.Status) {
	switch status {
	case attendance.StatusPresent:
		c.present++
	case attendance.StatusAbsent:
		c.absent++
	case attendance.StatusLate:
		c.late++
	case attendance.StatusLeave:
		c.leave++
	}
}

// DateRangeSeries returns one summary per calendar day in [start, end],
// ascending. Total is the current number of active employees for every day.
// Unparseable bounds or start after end give an empty series.
func DateRangeSeries(s store.State, start, end string) []report.DailySummary {
	series := make([]report.DailySummary, 0)

	from, err := time.Parse(clock.DateLayout, start)
	if err != nil {
		return series
	}
	to, err := time.Parse(clock.DateLayout, end)
	if err != nil || from.After(to) {
		return series
	}

	byDate := make(map[string]*statusCounts)
	for _, r := range s.AttendanceRecords {
		c, ok := byDate[r.Date]
		if !ok {
			c = &statusCounts{}
			byDate[r.Date] = c
		}
		c.add(r.Status)
	}

	total := len(ActiveEmployees(s))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(clock.DateLayout)
		var c statusCounts
		if counted, ok := byDate[date]; ok {
			c = *counted
		}
		series = append(series, report.DailySummary{
			Date:    date,
			Label:   d.Format("Jan 02"),
			Present: c.present,
			Absent:  c.absent,
			Late:    c.late,
			Leave:   c.leave,
			Total:   total,
			Rate:    percent(c.present, total),
		})
	}
	return series
}

// DepartmentRollup groups records dated within [start, end] by the department
// of their employee. Departments are listed in order of first appearance
// among all employees; only active employees are counted or matched.
// TotalEmployees counts roster entries, so duplicate ids count once each,
// the same way AttendanceStats does.
func DepartmentRollup(s store.State, start, end string) []report.DepartmentSummary {
	departments := Departments(s)
	members := make(map[string]map[string]struct{}, len(departments))
	headcount := make(map[string]int, len(departments))
	for _, dept := range departments {
		members[dept] = make(map[string]struct{})
	}
	for _, e := range s.Employees {
		if e.IsActive() {
			members[e.Department][e.ID] = struct{}{}
			headcount[e.Department]++
		}
	}

	out := make([]report.DepartmentSummary, 0, len(departments))
	for _, dept := range departments {
		ids := members[dept]
		var (
			counts statusCounts
			hours  float64
			n      int
		)
		for _, r := range s.AttendanceRecords {
			if _, ok := ids[r.EmployeeID]; !ok || !inRange(r.Date, start, end) {
				continue
			}
			counts.add(r.Status)
			hours += r.WorkHours
			n++
		}
		out = append(out, report.DepartmentSummary{
			Department:     dept,
			TotalEmployees: headcount[dept],
			TotalPresent:   counts.present,
			TotalAbsent:    counts.absent,
			TotalLate:      counts.late,
			TotalLeave:     counts.leave,
			AvgWorkHours:   average2(hours, n),
		})
	}
	return out
}

// TopPerformers ranks active employees by present days within [start, end].
// Ties keep roster order. An id listed more than once yields a single row at
// its first position carrying the last entry's name and department.
// limit <= 0 means the default of 10.
func TopPerformers(s store.State, start, end string, limit int) []report.Performer {
	if limit <= 0 {
		limit = report.DefaultTopPerformersLimit
	}

	performers := make([]report.Performer, 0)
	seen := make(map[string]int)
	for _, e := range s.Employees {
		if !e.IsActive() {
			continue
		}
		if i, ok := seen[e.ID]; ok {
			performers[i].Name = e.Name
			performers[i].Department = e.Department
			continue
		}
		p := report.Performer{
			EmployeeID: e.ID,
			Name:       e.Name,
			Department: e.Department,
		}
		var hours float64
		for _, r := range s.AttendanceRecords {
			if r.EmployeeID != e.ID || !inRange(r.Date, start, end) {
				continue
			}
			p.TotalDays++
			if r.Status == attendance.StatusPresent {
				p.PresentDays++
			}
			hours += r.WorkHours
		}
		p.AvgWorkHours = average2(hours, p.TotalDays)
		seen[e.ID] = len(performers)
		performers = append(performers, p)
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].PresentDays > performers[j].PresentDays
	})

	if len(performers) > limit {
		performers = performers[:limit]
	}
	return performers
}

// Summarize builds the report header from a series produced by
// DateRangeSeries over the same snapshot.
func Summarize(s store.State, series []report.DailySummary) report.Summary {
	var rateSum int
	for _, d := range series {
		rateSum += d.Rate
	}
	var hours float64
	for _, r := range s.AttendanceRecords {
		hours += r.WorkHours
	}

	avgRate := 0
	if len(series) > 0 {
		avgRate = int(decimal.NewFromInt(int64(rateSum)).Div(decimal.NewFromInt(int64(len(series)))).Round(0).IntPart())
	}

	return report.Summary{
		TotalEmployees:    len(ActiveEmployees(s)),
		AvgAttendanceRate: avgRate,
		TotalWorkHours:    roundWhole(hours),
		PeriodDays:        len(series),
	}
}
