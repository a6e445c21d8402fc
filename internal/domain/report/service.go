package report

import "context"

// ReportService defines the interface for attendance analytics
type ReportService interface {
	// GetReport returns summary, trend, department stats and top performers for one period
	GetReport(ctx context.Context, req ReportRequest) (Report, error)

	// GetAttendanceTrend returns the per-day series for the period
	GetAttendanceTrend(ctx context.Context, req ReportRequest) (TrendReport, error)

	// GetDepartmentStats returns the per-department rollup for the period
	GetDepartmentStats(ctx context.Context, req ReportRequest) (DepartmentReport, error)

	// GetTopPerformers returns the ranked leaderboard for the period
	GetTopPerformers(ctx context.Context, req ReportRequest) (TopPerformersReport, error)
}
