package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
	"github.com/invenflow/invenflow-api/internal/infrastructure/memory"
)

func newInventoryFixture(t *testing.T) (*InventoryService, *memory.Stores) {
	t.Helper()
	stores := memory.NewStores()
	if err := stores.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	svc := NewInventoryService(stores.Products, stores.Movements, domain.NewRegistry(), zerolog.Nop())
	return svc, stores
}

func TestInventoryService_List_RoleGate(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	if _, err := svc.List(context.Background(), domain.RoleCustomer); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for customer, got %v", err)
	}
	views, err := svc.List(context.Background(), domain.RoleSupplier)
	if err != nil {
		t.Fatalf("supplier list failed: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 products, got %d", len(views))
	}
}

func TestInventoryService_Adjust_StockIn(t *testing.T) {
	svc, stores := newInventoryFixture(t)

	movement, err := svc.Adjust(context.Background(), adminIdent, ports.AdjustStockInput{
		ProductID: "PROD-5678",
		Type:      domain.MovementIn,
		Quantity:  40,
		Note:      "restock",
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if movement.Type != domain.MovementIn || movement.Quantity != 40 {
		t.Fatalf("unexpected movement: %+v", movement)
	}

	p, err := stores.Products.FindByID(context.Background(), "PROD-5678")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if p.Stock != 40 {
		t.Fatalf("expected stock 40, got %d", p.Stock)
	}

	movements, err := svc.Movements(context.Background(), domain.RoleAdministrator, 10)
	if err != nil {
		t.Fatalf("movements failed: %v", err)
	}
	if movements[0].ID != movement.ID {
		t.Fatalf("newest movement not first: %+v", movements[0])
	}
}

func TestInventoryService_Adjust_StockOutBelowZero(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	// Coffee beans have 30 in stock; taking 31 must fail.
	if _, err := svc.Adjust(context.Background(), adminIdent, ports.AdjustStockInput{
		ProductID: "PROD-2345",
		Type:      domain.MovementOut,
		Quantity:  31,
	}); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestInventoryService_Adjust_SupplierForbidden(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	supplier := domain.Identity{ID: "supplier-1", Role: domain.RoleSupplier}
	if _, err := svc.Adjust(context.Background(), supplier, ports.AdjustStockInput{
		ProductID: "PROD-1234",
		Type:      domain.MovementIn,
		Quantity:  1,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInventoryService_Movements_AdminOnly(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	if _, err := svc.Movements(context.Background(), domain.RoleSupplier, 10); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for supplier, got %v", err)
	}
}
