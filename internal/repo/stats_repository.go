package repo

import (
	"time"

	"github.com/wearapparel/admin-console/internal/analytics"
)

// StatsRepository produces the dashboard summary cards for a window
// starting at since (nil means all time).
type StatsRepository interface {
	GetDashboardStats(since *time.Time) (analytics.DashboardStats, error)
}
