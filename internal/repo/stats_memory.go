package repo

import (
	"time"

	"github.com/wearapparel/admin-console/internal/analytics"
)

// InMemoryStatsRepository computes dashboard stats from repository
// snapshots with the pure reducer.
type InMemoryStatsRepository struct {
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{}
}

func (r *InMemoryStatsRepository) SetRepositories(orders OrderRepository, items OrderItemRepository) {
	r.orderRepo = orders
	r.itemRepo = items
}

func (r *InMemoryStatsRepository) GetDashboardStats(since *time.Time) (analytics.DashboardStats, error) {
	orders, err := r.orderRepo.GetAll(OrderFilter{Since: since})
	if err != nil {
		return analytics.DashboardStats{}, err
	}
	items, err := r.itemRepo.GetAll(since)
	if err != nil {
		return analytics.DashboardStats{}, err
	}
	return analytics.ComputeStats(orders, items), nil
}
