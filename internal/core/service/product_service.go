package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// ProductService manages the catalog. Writes are gated through the role
// registry; every role on the products page may read.
type ProductService struct {
	products ports.ProductRepository
	registry *domain.Registry
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, registry *domain.Registry, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, registry: registry, logger: logger}
}

func (s *ProductService) List(ctx context.Context, role domain.Role, filter ports.ListProductsFilter) ([]ports.ProductView, error) {
	if !s.registry.Allows(domain.PageProducts, role) {
		return nil, domain.ErrForbidden
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return productViews(products), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*ports.ProductView, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := productView(p)
	return &view, nil
}

func (s *ProductService) Create(ctx context.Context, role domain.Role, input ports.ProductInput) (*ports.ProductView, error) {
	if !s.registry.Allows(domain.ActionProductCreate, role) {
		return nil, domain.ErrForbidden
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	p := &domain.Product{
		ID:         "PROD-" + id.String()[:8],
		Name:       input.Name,
		SKU:        input.SKU,
		Category:   input.Category,
		Stock:      input.Stock,
		Price:      input.Price,
		SupplierID: input.SupplierID,
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Str("sku", p.SKU).Msg("product created")
	view := productView(p)
	return &view, nil
}

func (s *ProductService) Update(ctx context.Context, role domain.Role, id string, input ports.ProductInput) (*ports.ProductView, error) {
	if !s.registry.Allows(domain.ActionProductUpdate, role) {
		return nil, domain.ErrForbidden
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.SKU = input.SKU
	p.Category = input.Category
	p.Stock = input.Stock
	p.Price = input.Price
	if input.SupplierID != "" {
		p.SupplierID = input.SupplierID
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	view := productView(p)
	return &view, nil
}

func (s *ProductService) Delete(ctx context.Context, role domain.Role, id string) error {
	if !s.registry.Allows(domain.ActionProductDelete, role) {
		return domain.ErrForbidden
	}

	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func productView(p *domain.Product) ports.ProductView {
	return ports.ProductView{Product: *p, Status: p.StockStatus()}
}

func productViews(products []*domain.Product) []ports.ProductView {
	views := make([]ports.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views
}
