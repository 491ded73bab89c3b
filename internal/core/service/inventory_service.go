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

// InventoryService adjusts stock levels and keeps the movement ledger.
type InventoryService struct {
	products  ports.ProductRepository
	movements ports.MovementRepository
	registry  *domain.Registry
	logger    zerolog.Logger
}

func NewInventoryService(products ports.ProductRepository, movements ports.MovementRepository, registry *domain.Registry, logger zerolog.Logger) *InventoryService {
	return &InventoryService{products: products, movements: movements, registry: registry, logger: logger}
}

func (s *InventoryService) List(ctx context.Context, role domain.Role) ([]ports.ProductView, error) {
	if !s.registry.Allows(domain.PageInventory, role) {
		return nil, domain.ErrForbidden
	}

	products, err := s.products.List(ctx, ports.ListProductsFilter{})
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return productViews(products), nil
}

// Adjust applies a manual stock movement to a product and records it in the
// ledger. Stock never goes negative.
func (s *InventoryService) Adjust(ctx context.Context, ident domain.Identity, input ports.AdjustStockInput) (*domain.StockMovement, error) {
	if !s.registry.Allows(domain.ActionInventoryAdjust, ident.Role) {
		return nil, domain.ErrForbidden
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInsufficientStock
	}

	p, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	switch input.Type {
	case domain.MovementIn:
		p.Stock += input.Quantity
	case domain.MovementOut:
		if p.Stock < input.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		p.Stock -= input.Quantity
	default:
		return nil, fmt.Errorf("unknown movement type %q", input.Type)
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("apply stock adjustment: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	movement := &domain.StockMovement{
		ID:          "MOV-" + id.String()[:8],
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Date:        time.Now().UTC(),
		Note:        input.Note,
	}
	if err := s.movements.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("record stock movement: %w", err)
	}

	s.logger.Info().
		Str("product_id", p.ID).
		Str("type", string(input.Type)).
		Int("quantity", input.Quantity).
		Int("stock", p.Stock).
		Msg("stock adjusted")
	return movement, nil
}

func (s *InventoryService) Movements(ctx context.Context, role domain.Role, limit int) ([]*domain.StockMovement, error) {
	if !s.registry.Allows(domain.PageStockMovements, role) {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = 50
	}
	return s.movements.List(ctx, limit)
}
