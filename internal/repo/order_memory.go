package repo

import (
	"sort"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of
// OrderRepository used by the handler test suites.
type InMemoryOrderRepository struct {
	orders []models.Order
	nextID int
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		nextID: 1,
	}
}

func (r *InMemoryOrderRepository) GetAll(f OrderFilter) ([]models.Order, error) {
	var result []models.Order
	for _, o := range r.orders {
		if f.Since != nil && o.CreatedAt.Before(*f.Since) {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Create(o models.Order) (models.Order, error) {
	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryOrderRepository) UpdateStatus(id int, u StatusUpdate) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID != id {
			continue
		}
		if u.PaymentStatus != nil {
			o.PaymentStatus = *u.PaymentStatus
		}
		if u.DeliveryStatus != nil {
			o.DeliveryStatus = *u.DeliveryStatus
		}
		o.UpdatedAt = time.Now().UTC()
		r.orders[i] = o
		return o, nil
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
	r.nextID = 1
}
