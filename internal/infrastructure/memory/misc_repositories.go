package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// SupplierRepository is the in-memory supplier directory.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]domain.Supplier
}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[string]domain.Supplier)}
}

func (r *SupplierRepository) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return &s, nil
}

func (r *SupplierRepository) List(_ context.Context) ([]*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		clone := s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SupplierRepository) Create(_ context.Context, s *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[s.ID] = *s
	return nil
}

func (r *SupplierRepository) Update(_ context.Context, s *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[s.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	r.suppliers[s.ID] = *s
	return nil
}

func (r *SupplierRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(r.suppliers, id)
	return nil
}

// ReviewRepository is the in-memory review store.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]domain.Review)}
}

func (r *ReviewRepository) FindByID(_ context.Context, id string) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return &rev, nil
}

func (r *ReviewRepository) ListByProduct(_ context.Context, productID string) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Review, 0)
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			clone := rev
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ReviewRepository) Create(_ context.Context, rev *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[rev.ID] = *rev
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

// MovementRepository is the in-memory stock movement ledger, newest first.
type MovementRepository struct {
	mu        sync.RWMutex
	movements []domain.StockMovement
}

func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

func (r *MovementRepository) List(_ context.Context, limit int) ([]*domain.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.StockMovement, 0, limit)
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		clone := r.movements[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *MovementRepository) Create(_ context.Context, m *domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *m)
	return nil
}

// CartRepository holds one cart per customer.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]domain.Cart)}
}

func (r *CartRepository) Get(_ context.Context, customerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[customerID]
	if !ok {
		return &domain.Cart{CustomerID: customerID}, nil
	}
	clone := cart
	clone.Items = make([]domain.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone, nil
}

func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *cart
	clone.Items = make([]domain.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	r.carts[cart.CustomerID] = clone
	return nil
}

func (r *CartRepository) Clear(_ context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, customerID)
	return nil
}
