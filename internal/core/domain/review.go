package domain

import "time"

// Review is a customer rating of a product.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
