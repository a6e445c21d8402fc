package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns today's stats and records computed from one snapshot
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
