package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// OrderService lists and mutates orders with role-scoped visibility:
// customers only ever see and touch their own orders.
type OrderService struct {
	orders ports.OrderRepository
	views  ports.ViewService
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, views ports.ViewService, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, views: views, logger: logger}
}

func (s *OrderService) List(ctx context.Context, ident domain.Identity, filter ports.ListOrdersFilter) ([]ports.OrderView, error) {
	if ident.Role == domain.RoleCustomer {
		filter.CustomerID = ident.ID
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]ports.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, ports.OrderView{
			Order:   *o,
			Actions: s.views.OrderActions(ident.Role, *o),
		})
	}
	return views, nil
}

func (s *OrderService) Get(ctx context.Context, ident domain.Identity, id string) (*ports.OrderView, error) {
	order, err := s.scopedFind(ctx, ident, id)
	if err != nil {
		return nil, err
	}
	return s.view(ident, order), nil
}

// Cancel cancels a customer's own order while its status still allows it.
func (s *OrderService) Cancel(ctx context.Context, ident domain.Identity, id string) (*ports.OrderView, error) {
	if ident.Role != domain.RoleCustomer {
		return nil, domain.ErrForbidden
	}

	order, err := s.scopedFind(ctx, ident, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.orders.UpdateStatus(ctx, id, domain.OrderCancelled); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	order.Status = domain.OrderCancelled

	s.logger.Info().Str("order_id", id).Str("customer_id", ident.ID).Msg("order cancelled")
	return s.view(ident, order), nil
}

// UpdateStatus moves an order along the status state machine. Administrator
// only; transitions outside the machine are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, ident domain.Identity, id string, next domain.OrderStatus) (*ports.OrderView, error) {
	if ident.Role != domain.RoleAdministrator {
		return nil, domain.ErrForbidden
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = next

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(next)).
		Msg("order status updated")
	return s.view(ident, order), nil
}

// scopedFind retrieves an order, hiding other customers' orders behind a
// not-found rather than a forbidden so ids cannot be probed.
func (s *OrderService) scopedFind(ctx context.Context, ident domain.Identity, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ident.Role == domain.RoleCustomer && order.CustomerID != ident.ID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) view(ident domain.Identity, order *domain.Order) *ports.OrderView {
	return &ports.OrderView{
		Order:   *order,
		Actions: s.views.OrderActions(ident.Role, *order),
	}
}
