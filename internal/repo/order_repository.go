package repo

import (
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

// OrderFilter narrows order listings. A nil Since returns everything.
type OrderFilter struct {
	Since *time.Time
}

// StatusUpdate carries the editable status fields of an order. A nil
// field is left untouched.
type StatusUpdate struct {
	PaymentStatus  *string
	DeliveryStatus *string
}

// OrderRepository defines order data operations. Orders are written by
// the storefront; the console reads them and edits their statuses.
type OrderRepository interface {
	GetAll(f OrderFilter) ([]models.Order, error)
	GetByID(id int) (models.Order, error)
	Create(o models.Order) (models.Order, error)
	UpdateStatus(id int, u StatusUpdate) (models.Order, error)
}

// OrderItemRepository defines access to order line items.
type OrderItemRepository interface {
	// GetAll returns line items, optionally only those belonging to
	// orders created at or after since.
	GetAll(since *time.Time) ([]models.OrderItem, error)
	Create(it models.OrderItem) (models.OrderItem, error)
}
