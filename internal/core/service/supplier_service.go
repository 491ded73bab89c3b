package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// SupplierService manages the supplier directory (administrator only).
type SupplierService struct {
	suppliers ports.SupplierRepository
	registry  *domain.Registry
	logger    zerolog.Logger
}

func NewSupplierService(suppliers ports.SupplierRepository, registry *domain.Registry, logger zerolog.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, registry: registry, logger: logger}
}

func (s *SupplierService) List(ctx context.Context, role domain.Role) ([]*domain.Supplier, error) {
	if !s.registry.Allows(domain.PageSuppliers, role) {
		return nil, domain.ErrForbidden
	}
	return s.suppliers.List(ctx)
}

func (s *SupplierService) Create(ctx context.Context, role domain.Role, supplier domain.Supplier) (*domain.Supplier, error) {
	if !s.registry.Allows(domain.ActionSupplierManage, role) {
		return nil, domain.ErrForbidden
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	supplier.ID = "SUP-" + id.String()[:8]
	supplier.Active = true

	if err := s.suppliers.Create(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	s.logger.Info().Str("supplier_id", supplier.ID).Msg("supplier created")
	return &supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, role domain.Role, supplier domain.Supplier) (*domain.Supplier, error) {
	if !s.registry.Allows(domain.ActionSupplierManage, role) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.suppliers.FindByID(ctx, supplier.ID); err != nil {
		return nil, err
	}
	if err := s.suppliers.Update(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return &supplier, nil
}

func (s *SupplierService) Delete(ctx context.Context, role domain.Role, id string) error {
	if !s.registry.Allows(domain.ActionSupplierManage, role) {
		return domain.ErrForbidden
	}
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("supplier_id", id).Msg("supplier deleted")
	return nil
}
