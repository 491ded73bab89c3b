package service

import (
	"context"
	"testing"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/infrastructure/memory"
)

func newSeededDashboard(t *testing.T) *DashboardService {
	t.Helper()
	stores := memory.NewStores()
	if err := stores.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return NewDashboardService(stores.Products, stores.Orders, stores.Movements, stores.Carts)
}

func TestDashboardService_SupplierSeesSeededProducts(t *testing.T) {
	svc := newSeededDashboard(t)

	demo, ok := domain.DemoIdentity(domain.RoleSupplier)
	if !ok {
		t.Fatalf("missing supplier demo identity")
	}

	view, err := svc.Compose(context.Background(), demo)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if view.Variant != VariantSupplierDashboard {
		t.Fatalf("expected supplier variant, got %s", view.Variant)
	}
	if view.TotalProducts == 0 {
		t.Fatalf("seeded supplier dashboard must show products")
	}
	if view.LowStockCount == 0 {
		t.Fatalf("seeded supplier dashboard must flag the low-stock item")
	}
}

func TestDashboardService_AdminTotals(t *testing.T) {
	svc := newSeededDashboard(t)

	view, err := svc.Compose(context.Background(), adminIdent)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if view.Variant != VariantAdminDashboard {
		t.Fatalf("expected admin variant, got %s", view.Variant)
	}
	if view.TotalProducts != 5 {
		t.Fatalf("expected 5 seeded products, got %d", view.TotalProducts)
	}
	if view.InventoryValue <= 0 {
		t.Fatalf("inventory value not computed")
	}
	if len(view.RecentMovements) == 0 {
		t.Fatalf("recent movements empty")
	}
}
