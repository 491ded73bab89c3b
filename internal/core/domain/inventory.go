package domain

import "time"

// MovementType distinguishes stock entering vs leaving the warehouse.
type MovementType string

const (
	MovementIn  MovementType = "Stock In"
	MovementOut MovementType = "Stock Out"
)

// StockMovement records a single stock adjustment against a product.
type StockMovement struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Date        time.Time    `json:"date"`
	Note        string       `json:"note,omitempty"`
}
