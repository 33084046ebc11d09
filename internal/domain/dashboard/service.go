package dashboard

import "context"

// DashboardService defines the admin dashboard aggregation.
type DashboardService interface {
	// AdminStats assembles today's tallies and the 7-day trend.
	AdminStats(ctx context.Context) (AdminStatsResponse, error)
}
