package domain

// CartItem is a product line held in a customer's cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds a single customer's pending purchase lines.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

// Total sums price times quantity across all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Empty reports whether the cart holds no lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
