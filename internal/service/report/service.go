package report

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/derive"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

type ReportServiceImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewReportService(st *store.Store, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		store: st,
		clock: clk,
	}
}

// resolve validates the request and returns the scoped snapshot together with
// the inclusive date bounds of the period.
func (s *ReportServiceImpl) resolve(req *report.ReportRequest) (store.State, string, string, error) {
	if err := req.Validate(); err != nil {
		return store.State{}, "", "", err
	}
	start, end := req.Range(s.clock.Now())
	if err := report.CheckRange(start, end); err != nil {
		return store.State{}, "", "", err
	}
	return derive.ScopeToDepartment(s.store.Snapshot(), req.Department), start, end, nil
}

// GetReport implements report.ReportService.
func (s *ReportServiceImpl) GetReport(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	// one snapshot for the department list and every section
	snap := s.store.Snapshot()
	now := s.clock.Now()
	start, end := req.Range(now)
	if err := report.CheckRange(start, end); err != nil {
		return report.Report{}, err
	}
	scoped := derive.ScopeToDepartment(snap, req.Department)

	series := derive.DateRangeSeries(scoped, start, end)

	return report.Report{
		Period:          req.Period,
		StartDate:       start,
		EndDate:         end,
		GeneratedAt:     now.Format(time.RFC3339),
		Departments:     derive.Departments(snap),
		Summary:         derive.Summarize(scoped, series),
		Trend:           series,
		DepartmentStats: derive.DepartmentRollup(scoped, start, end),
		TopPerformers:   derive.TopPerformers(scoped, start, end, req.Limit),
	}, nil
}

// GetAttendanceTrend implements report.ReportService.
func (s *ReportServiceImpl) GetAttendanceTrend(ctx context.Context, req report.ReportRequest) (report.TrendReport, error) {
	snap, start, end, err := s.resolve(&req)
	if err != nil {
		return report.TrendReport{}, err
	}

	return report.TrendReport{
		StartDate: start,
		EndDate:   end,
		Days:      derive.DateRangeSeries(snap, start, end),
	}, nil
}

// GetDepartmentStats implements report.ReportService.
func (s *ReportServiceImpl) GetDepartmentStats(ctx context.Context, req report.ReportRequest) (report.DepartmentReport, error) {
	snap, start, end, err := s.resolve(&req)
	if err != nil {
		return report.DepartmentReport{}, err
	}

	return report.DepartmentReport{
		StartDate:   start,
		EndDate:     end,
		Departments: derive.DepartmentRollup(snap, start, end),
	}, nil
}

// GetTopPerformers implements report.ReportService.
func (s *ReportServiceImpl) GetTopPerformers(ctx context.Context, req report.ReportRequest) (report.TopPerformersReport, error) {
	snap, start, end, err := s.resolve(&req)
	if err != nil {
		return report.TopPerformersReport{}, err
	}

	return report.TopPerformersReport{
		StartDate:  start,
		EndDate:    end,
		Limit:      req.Limit,
		Performers: derive.TopPerformers(snap, start, end, req.Limit),
	}, nil
}
