package models

import "time"

// Delivery statuses an order moves through. An order with no recorded
// delivery status is shown as Processing in the order list.
const (
	DeliveryProcessing = "Processing"
	DeliveryShipped    = "Shipped"
	DeliveryDelivered  = "Delivered"
	DeliveryCancelled  = "Cancelled"
)

// Payment statuses. Orders without one are shown as Pending.
const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"
)

var DeliveryStatusOptions = []string{DeliveryProcessing, DeliveryShipped, DeliveryDelivered, DeliveryCancelled}

var PaymentStatusOptions = []string{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}

// Order represents a customer purchase placed through the storefront.
// TotalAmount and both statuses may be missing on rows written by older
// storefront versions; readers coerce them to zero values.
type Order struct {
	ID             int       `json:"id"`
	CustomerName   string    `json:"customer_name,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	DeliveryStatus string    `json:"delivery_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ValidDeliveryStatus(s string) bool {
	for _, opt := range DeliveryStatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	for _, opt := range PaymentStatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}
