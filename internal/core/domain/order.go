package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// orderTransitions defines the allowed state machine transitions.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether a customer may still cancel an order in this
// status. Cancellation is closed once the order has shipped, was delivered,
// or is already cancelled.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderDelivered, OrderShipped, OrderCancelled:
		return false
	}
	return true
}

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(raw), true
	}
	return "", false
}

// OrderItem is a single product line on an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer purchase with its line items.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Date         time.Time   `json:"date"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
}
