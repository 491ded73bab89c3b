package ports

import (
	"context"
	"time"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// ProductView decorates a product with its derived stock status.
type ProductView struct {
	domain.Product
	Status domain.StockStatus `json:"status"`
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name       string
	SKU        string
	Category   string
	Stock      int
	Price      float64
	SupplierID string
}

type ProductService interface {
	List(ctx context.Context, role domain.Role, filter ListProductsFilter) ([]ProductView, error)
	Get(ctx context.Context, id string) (*ProductView, error)
	Create(ctx context.Context, role domain.Role, input ProductInput) (*ProductView, error)
	Update(ctx context.Context, role domain.Role, id string, input ProductInput) (*ProductView, error)
	Delete(ctx context.Context, role domain.Role, id string) error
}

// OrderView decorates an order with the actions available to the requester.
type OrderView struct {
	domain.Order
	Actions []string `json:"actions"`
}

type OrderService interface {
	// List scopes results by requester: customers see only their own orders.
	List(ctx context.Context, ident domain.Identity, filter ListOrdersFilter) ([]OrderView, error)
	Get(ctx context.Context, ident domain.Identity, id string) (*OrderView, error)
	// Cancel is a customer action guarded by the order's status.
	Cancel(ctx context.Context, ident domain.Identity, id string) (*OrderView, error)
	// UpdateStatus is an administrator action validated against the order
	// status state machine.
	UpdateStatus(ctx context.Context, ident domain.Identity, id string, next domain.OrderStatus) (*OrderView, error)
}

// AdjustStockInput describes a manual stock adjustment.
type AdjustStockInput struct {
	ProductID string
	Type      domain.MovementType
	Quantity  int
	Note      string
}

type InventoryService interface {
	List(ctx context.Context, role domain.Role) ([]ProductView, error)
	Adjust(ctx context.Context, ident domain.Identity, input AdjustStockInput) (*domain.StockMovement, error)
	Movements(ctx context.Context, role domain.Role, limit int) ([]*domain.StockMovement, error)
}

// CheckoutInput carries the shipping details of a checkout.
type CheckoutInput struct {
	Address string
	City    string
	ZipCode string
}

// CheckoutResult reports the order created from the cart.
type CheckoutResult struct {
	Order   domain.Order `json:"order"`
	Message string       `json:"message"`
}

type CartService interface {
	Get(ctx context.Context, ident domain.Identity) (*domain.Cart, error)
	AddItem(ctx context.Context, ident domain.Identity, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, ident domain.Identity, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, ident domain.Identity, productID string) (*domain.Cart, error)
	// Checkout validates the cart, applies the simulated processing delay,
	// creates a Pending order from the cart lines, and clears the cart. A
	// cancelled context discards the in-flight completion with no effect.
	Checkout(ctx context.Context, ident domain.Identity, input CheckoutInput) (*CheckoutResult, error)
}

// UserInput carries the writable fields of a managed account.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	// Active is a tri-state on update: nil keeps the stored flag.
	Active *bool
}

type UserService interface {
	List(ctx context.Context, ident domain.Identity, filter ListUsersFilter) ([]*domain.User, error)
	Create(ctx context.Context, ident domain.Identity, input UserInput) (*domain.User, error)
	Update(ctx context.Context, ident domain.Identity, id string, input UserInput) (*domain.User, error)
	// Delete removes an account. Administrators cannot delete themselves.
	Delete(ctx context.Context, ident domain.Identity, id string) error
}

// ReviewInput carries the writable fields of a review.
type ReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

type ReviewService interface {
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
	Create(ctx context.Context, ident domain.Identity, input ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, ident domain.Identity, id string) error
}

// SupplierService manages suppliers (administrator only).
type SupplierService interface {
	List(ctx context.Context, role domain.Role) ([]*domain.Supplier, error)
	Create(ctx context.Context, role domain.Role, s domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, role domain.Role, s domain.Supplier) (*domain.Supplier, error)
	Delete(ctx context.Context, role domain.Role, id string) error
}

// DashboardView is the per-role dashboard payload.
type DashboardView struct {
	Variant         string                  `json:"variant"`
	TotalProducts   int                     `json:"total_products,omitempty"`
	InventoryValue  float64                 `json:"inventory_value,omitempty"`
	LowStockCount   int                     `json:"low_stock_count,omitempty"`
	Categories      int                     `json:"categories,omitempty"`
	RecentMovements []*domain.StockMovement `json:"recent_movements,omitempty"`
	LowStock        []ProductView           `json:"low_stock,omitempty"`
	RecentOrders    []domain.Order          `json:"recent_orders,omitempty"`
	CartItems       int                     `json:"cart_items,omitempty"`
	CartTotal       float64                 `json:"cart_total,omitempty"`
	GeneratedAt     time.Time               `json:"generated_at"`
}

type DashboardService interface {
	Compose(ctx context.Context, ident domain.Identity) (*DashboardView, error)
}
