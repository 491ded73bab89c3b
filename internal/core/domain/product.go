package domain

// StockStatus is derived from the stock level, never stored.
type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockLow StockStatus = "Low Stock"
	StockOut StockStatus = "Out of Stock"
)

// LowStockThreshold is the reorder point below which a product counts as low.
const LowStockThreshold = 50

// Product is a catalog item.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Category   string  `json:"category"`
	Stock      int     `json:"stock"`
	Price      float64 `json:"price"`
	SupplierID string  `json:"supplier_id,omitempty"`
}

// StockStatus classifies the current stock level.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock <= LowStockThreshold:
		return StockLow
	}
	return StockIn
}
