package ports

import (
	"context"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// UserRepository persists managed accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ListUsersFilter narrows a user listing.
type ListUsersFilter struct {
	Role   domain.Role // empty = all roles
	Search string      // partial match on name, email, or role
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ListProductsFilter narrows a product listing.
type ListProductsFilter struct {
	Search     string // partial match on name, sku, or category
	Category   string
	SupplierID string // scope to one supplier's products
}

// OrderRepository persists customer orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	// UpdateStatus sets the order's status. The caller is responsible for
	// transition validation.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// ListOrdersFilter narrows an order listing.
type ListOrdersFilter struct {
	CustomerID string             // empty = all customers (admin/supplier view)
	Status     domain.OrderStatus // empty = all statuses
	Search     string             // partial match on id, customer name, or status
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Create(ctx context.Context, s *domain.Supplier) error
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
}

// MovementRepository persists stock movements.
type MovementRepository interface {
	List(ctx context.Context, limit int) ([]*domain.StockMovement, error)
	Create(ctx context.Context, m *domain.StockMovement) error
}

// CartRepository holds each customer's cart.
type CartRepository interface {
	// Get returns the customer's cart, creating an empty one if absent.
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, customerID string) error
}
