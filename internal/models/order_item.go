package models

// OrderItem is one product line within an order.
type OrderItem struct {
	ID          int    `json:"id"`
	OrderID     int    `json:"order_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
