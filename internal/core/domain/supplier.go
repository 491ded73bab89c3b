package domain

// Supplier is a vendor supplying catalog products.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Active  bool   `json:"active"`
}
