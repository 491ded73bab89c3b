package service

import (
	"context"
	"time"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

const recentLimit = 5

// DashboardService assembles the per-role dashboard payload. The variant is
// the same one ViewService reports for the dashboard page; the figures are
// computed from whatever the role is allowed to see.
type DashboardService struct {
	products  ports.ProductRepository
	orders    ports.OrderRepository
	movements ports.MovementRepository
	carts     ports.CartRepository
}

func NewDashboardService(products ports.ProductRepository, orders ports.OrderRepository, movements ports.MovementRepository, carts ports.CartRepository) *DashboardService {
	return &DashboardService{products: products, orders: orders, movements: movements, carts: carts}
}

func (s *DashboardService) Compose(ctx context.Context, ident domain.Identity) (*ports.DashboardView, error) {
	switch ident.Role {
	case domain.RoleAdministrator:
		return s.adminView(ctx)
	case domain.RoleSupplier:
		return s.supplierView(ctx, ident)
	case domain.RoleCustomer:
		return s.customerView(ctx, ident)
	}
	return nil, domain.ErrForbidden
}

func (s *DashboardService) adminView(ctx context.Context) (*ports.DashboardView, error) {
	products, err := s.products.List(ctx, ports.ListProductsFilter{})
	if err != nil {
		return nil, err
	}

	var value float64
	var low int
	categories := make(map[string]struct{})
	for _, p := range products {
		value += p.Price * float64(p.Stock)
		if p.StockStatus() != domain.StockIn {
			low++
		}
		categories[p.Category] = struct{}{}
	}

	movements, err := s.movements.List(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardView{
		Variant:         VariantAdminDashboard,
		TotalProducts:   len(products),
		InventoryValue:  value,
		LowStockCount:   low,
		Categories:      len(categories),
		RecentMovements: movements,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

func (s *DashboardService) supplierView(ctx context.Context, ident domain.Identity) (*ports.DashboardView, error) {
	products, err := s.products.List(ctx, ports.ListProductsFilter{SupplierID: ident.ID})
	if err != nil {
		return nil, err
	}

	var low []ports.ProductView
	for _, p := range products {
		if p.StockStatus() != domain.StockIn {
			low = append(low, productView(p))
		}
	}

	return &ports.DashboardView{
		Variant:       VariantSupplierDashboard,
		TotalProducts: len(products),
		LowStockCount: len(low),
		LowStock:      low,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

func (s *DashboardService) customerView(ctx context.Context, ident domain.Identity) (*ports.DashboardView, error) {
	orders, err := s.orders.List(ctx, ports.ListOrdersFilter{CustomerID: ident.ID})
	if err != nil {
		return nil, err
	}
	if len(orders) > recentLimit {
		orders = orders[:recentLimit]
	}
	recent := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		recent = append(recent, *o)
	}

	cart, err := s.carts.Get(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardView{
		Variant:      VariantCustomerDashboard,
		RecentOrders: recent,
		CartItems:    len(cart.Items),
		CartTotal:    cart.Total(),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
