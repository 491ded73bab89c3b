package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// CartService manages each customer's cart and the checkout flow. All
// operations require the customer role; carts are keyed by customer id.
type CartService struct {
	carts         ports.CartRepository
	products      ports.ProductRepository
	orders        ports.OrderRepository
	registry      *domain.Registry
	checkoutDelay time.Duration
	logger        zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, orders ports.OrderRepository, registry *domain.Registry, checkoutDelay time.Duration, logger zerolog.Logger) *CartService {
	return &CartService{
		carts:         carts,
		products:      products,
		orders:        orders,
		registry:      registry,
		checkoutDelay: checkoutDelay,
		logger:        logger,
	}
}

func (s *CartService) Get(ctx context.Context, ident domain.Identity) (*domain.Cart, error) {
	if !s.registry.Allows(domain.PageCart, ident.Role) {
		return nil, domain.ErrForbidden
	}
	return s.carts.Get(ctx, ident.ID)
}

func (s *CartService) AddItem(ctx context.Context, ident domain.Identity, productID string, quantity int) (*domain.Cart, error) {
	if !s.registry.Allows(domain.PageCart, ident.Role) {
		return nil, domain.ErrForbidden
	}
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}

	cart, err := s.carts.Get(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			return cart, s.carts.Save(ctx, cart)
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return cart, s.carts.Save(ctx, cart)
}

func (s *CartService) UpdateQuantity(ctx context.Context, ident domain.Identity, productID string, quantity int) (*domain.Cart, error) {
	if !s.registry.Allows(domain.PageCart, ident.Role) {
		return nil, domain.ErrForbidden
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, ident, productID)
	}

	cart, err := s.carts.Get(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return cart, s.carts.Save(ctx, cart)
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *CartService) RemoveItem(ctx context.Context, ident domain.Identity, productID string) (*domain.Cart, error) {
	if !s.registry.Allows(domain.PageCart, ident.Role) {
		return nil, domain.ErrForbidden
	}

	cart, err := s.carts.Get(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items
	return cart, s.carts.Save(ctx, cart)
}

// Checkout turns the cart into a Pending order. The simulated payment
// processing delay is context-aware: navigating away abandons the checkout
// with the cart intact and no order created.
func (s *CartService) Checkout(ctx context.Context, ident domain.Identity, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	if !s.registry.Allows(domain.ActionCartCheckout, ident.Role) {
		return nil, domain.ErrForbidden
	}

	cart, err := s.carts.Get(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, domain.ErrCartEmpty
	}

	if err := s.processPayment(ctx); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	order := domain.Order{
		ID:           "ORD-" + id.String()[:8],
		CustomerID:   ident.ID,
		CustomerName: ident.Name,
		Date:         time.Now().UTC(),
		Status:       domain.OrderPending,
		Total:        cart.Total(),
		Items:        make([]domain.OrderItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := s.carts.Clear(ctx, ident.ID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("customer_id", ident.ID).
		Float64("total", order.Total).
		Msg("checkout completed")

	return &ports.CheckoutResult{
		Order:   order,
		Message: fmt.Sprintf("Order %s has been placed successfully.", order.ID),
	}, nil
}

// processPayment stands in for the payment gateway round-trip.
func (s *CartService) processPayment(ctx context.Context) error {
	if s.checkoutDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.checkoutDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
