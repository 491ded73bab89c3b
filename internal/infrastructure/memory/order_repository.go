package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]domain.Order)}
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if !matchOrder(o, filter.Search) {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	// Newest first, matching the storefront's order history.
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *cloneOrder(*o)
	return nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func cloneOrder(o domain.Order) *domain.Order {
	clone := o
	clone.Items = make([]domain.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}

func matchOrder(o domain.Order, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(o.ID), search) ||
		strings.Contains(strings.ToLower(o.CustomerName), search) ||
		strings.Contains(strings.ToLower(string(o.Status)), search)
}
