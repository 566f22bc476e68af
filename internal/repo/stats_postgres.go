package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wearapparel/admin-console/internal/analytics"
)

type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// GetDashboardStats computes the summary cards in SQL. The average
// divides by GREATEST(count, 1) to match the reducer's zero-window
// behavior.
func (r *PostgresStatsRepository) GetDashboardStats(since *time.Time) (analytics.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	lower := time.Time{}
	if since != nil {
		lower = *since
	}

	stats := analytics.DashboardStats{TopItemSold: analytics.NoTopItem}

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(COALESCE(total_amount, 0)), 0),
		       COUNT(*),
		       COALESCE(SUM(COALESCE(total_amount, 0)), 0) / GREATEST(COUNT(*), 1)
		FROM orders
		WHERE created_at >= $1
	`, lower).Scan(&stats.TotalSales, &stats.NewOrders, &stats.AverageOrderValue)
	if err != nil {
		return stats, err
	}

	var topItem string
	err = r.db.QueryRowContext(ctx, `
		SELECT i.product_name
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.created_at >= $1
		GROUP BY i.product_name
		HAVING SUM(COALESCE(i.quantity, 0)) > 0
		ORDER BY SUM(COALESCE(i.quantity, 0)) DESC, MIN(i.id)
		LIMIT 1
	`, lower).Scan(&topItem)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return stats, err
	}
	if topItem != "" {
		stats.TopItemSold = topItem
	}

	return stats, nil
}
