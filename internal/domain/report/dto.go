package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/validator"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodCustom  Period = "custom"
)

const DefaultTopPerformersLimit = 10

// MaxRangeDays caps the number of days a resolved range may span.
const MaxRangeDays = 366

// ========================================
// REPORT REQUEST
// ========================================

type ReportRequest struct {
	Period     Period `json:"period"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Department string `json:"department"`
	Limit      int    `json:"limit"`
}

// Validate checks the period and limit only. Date bounds are compared as
// strings downstream, so malformed or inverted bounds yield empty results
// rather than an error.
func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period == "" {
		if r.StartDate != "" || r.EndDate != "" {
			r.Period = PeriodCustom
		} else {
			r.Period = PeriodWeek
		}
	}

	if !validator.IsInSlice(string(r.Period), []string{
		string(PeriodWeek), string(PeriodMonth), string(PeriodQuarter), string(PeriodCustom),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: ErrInvalidPeriod.Error(),
		})
	}

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: ErrInvalidLimit.Error(),
		})
	}
	if r.Limit == 0 {
		r.Limit = DefaultTopPerformersLimit
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range resolves the request into inclusive [start, end] dates relative to
// now. Weeks run Sunday to Saturday. A custom period keeps whichever bounds
// were given and fills the missing ones from the current week.
func (r ReportRequest) Range(now time.Time) (string, string) {
	const layout = "2006-01-02"
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	weekStart := day.AddDate(0, 0, -int(day.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	switch r.Period {
	case PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start.Format(layout), start.AddDate(0, 1, -1).Format(layout)
	case PeriodQuarter:
		firstMonth := time.Month((int(day.Month())-1)/3*3 + 1)
		start := time.Date(day.Year(), firstMonth, 1, 0, 0, 0, 0, day.Location())
		return start.Format(layout), start.AddDate(0, 3, -1).Format(layout)
	case PeriodCustom:
		start, end := r.StartDate, r.EndDate
		if start == "" {
			start = weekStart.Format(layout)
		}
		if end == "" {
			end = weekEnd.Format(layout)
		}
		return start, end
	default:
		return weekStart.Format(layout), weekEnd.Format(layout)
	}
}

// CheckRange rejects a resolved [start, end] spanning more than MaxRangeDays.
// Unparseable or inverted bounds pass; they produce empty results.
func CheckRange(start, end string) error {
	from, ok := validator.IsValidDate(start)
	if !ok {
		return nil
	}
	to, ok := validator.IsValidDate(end)
	if !ok || to.Before(from) {
		return nil
	}
	if to.Sub(from) >= MaxRangeDays*24*time.Hour {
		return validator.ValidationErrors{{
			Field:   "end_date",
			Message: ErrRangeTooLong.Error(),
		}}
	}
	return nil
}

// ========================================
// REPORT RESPONSES
// ========================================

type Report struct {
	Period          Period              `json:"period"`
	StartDate       string              `json:"start_date"`
	EndDate         string              `json:"end_date"`
	GeneratedAt     string              `json:"generated_at"`
	Departments     []string            `json:"departments"`
	Summary         Summary             `json:"summary"`
	Trend           []DailySummary      `json:"trend"`
	DepartmentStats []DepartmentSummary `json:"department_stats"`
	TopPerformers   []Performer         `json:"top_performers"`
}

type TrendReport struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []DailySummary `json:"days"`
}

type DepartmentReport struct {
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Departments []DepartmentSummary `json:"departments"`
}

type TopPerformersReport struct {
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Limit      int         `json:"limit"`
	Performers []Performer `json:"performers"`
}
