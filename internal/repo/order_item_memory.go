package repo

import (
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

// InMemoryOrderItemRepository is an in-memory implementation of
// OrderItemRepository. Window filtering needs the owning orders, so the
// order repository is attached after construction.
type InMemoryOrderItemRepository struct {
	items     []models.OrderItem
	nextID    int
	orderRepo *InMemoryOrderRepository
}

func NewInMemoryOrderItemRepository() *InMemoryOrderItemRepository {
	return &InMemoryOrderItemRepository{
		items:  []models.OrderItem{},
		nextID: 1,
	}
}

func (r *InMemoryOrderItemRepository) SetOrderRepository(orders *InMemoryOrderRepository) {
	r.orderRepo = orders
}

func (r *InMemoryOrderItemRepository) GetAll(since *time.Time) ([]models.OrderItem, error) {
	if since == nil || r.orderRepo == nil {
		return append([]models.OrderItem{}, r.items...), nil
	}

	var result []models.OrderItem
	for _, it := range r.items {
		o, err := r.orderRepo.GetByID(it.OrderID)
		if err != nil {
			continue
		}
		if o.CreatedAt.Before(*since) {
			continue
		}
		result = append(result, it)
	}
	return result, nil
}

func (r *InMemoryOrderItemRepository) Create(it models.OrderItem) (models.OrderItem, error) {
	it.ID = r.nextID
	r.nextID++
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryOrderItemRepository) Clear() {
	r.items = []models.OrderItem{}
	r.nextID = 1
}
