package dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard/internal/derive"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewDashboardService(st *store.Store, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		store: st,
		clock: clk,
	}
}

// GetDashboard computes every section from the same snapshot and the same
// instant, in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	snap := s.store.Snapshot()
	now := s.clock.Now()
	today := now.Format(clock.DateLayout)

	var (
		stats        report.AttendanceStats
		active       int
		todayRecords []dashboard.TodayRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Today's counters
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		stats = derive.StatsOn(snap, today)
		return nil
	})

	// 2. Active headcount
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		active = len(derive.ActiveEmployees(snap))
		return nil
	})

	// 3. Today's records joined with the roster
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		records := derive.RecordsOnDate(snap, today)
		todayRecords = make([]dashboard.TodayRecord, 0, len(records))
		for _, r := range records {
			row := dashboard.TodayRecord{Record: r}
			if e, ok := derive.LookupEmployee(snap, r.EmployeeID); ok {
				row.EmployeeName = e.Name
				row.Department = e.Department
			}
			todayRecords = append(todayRecords, row)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Date:            today,
		Time:            now.Format(clock.TimeLayout),
		Stats:           stats,
		AttendanceRate:  derive.AttendanceRate(stats),
		ActiveEmployees: active,
		TodayRecords:    todayRecords,
	}, nil
}
