package service

import (
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// Page variants. Each multi-role page maps a role to exactly one variant;
// single-variant pages use "default".
const (
	VariantDefault           = "default"
	VariantAdminDashboard    = "AdminDashboard"
	VariantCustomerDashboard = "CustomerDashboard"
	VariantSupplierDashboard = "SupplierDashboard"
	VariantProductCatalog    = "ProductCatalog"
	VariantProductManagement = "ProductManagement"
	VariantOwnOrders         = "OwnOrders"
	VariantAllOrders         = "AllOrders"
)

// pageVariants maps multi-role pages to their role-specific variant.
var pageVariants = map[string]map[domain.Role]string{
	domain.PageDashboard: {
		domain.RoleAdministrator: VariantAdminDashboard,
		domain.RoleCustomer:      VariantCustomerDashboard,
		domain.RoleSupplier:      VariantSupplierDashboard,
	},
	domain.PageProducts: {
		domain.RoleAdministrator: VariantProductManagement,
		domain.RoleSupplier:      VariantProductManagement,
		domain.RoleCustomer:      VariantProductCatalog,
	},
	domain.PageOrders: {
		domain.RoleAdministrator: VariantAllOrders,
		domain.RoleSupplier:      VariantAllOrders,
		domain.RoleCustomer:      VariantOwnOrders,
	},
}

// pageActions lists the candidate action keys per page, in display order.
// The registry filters them down per role; nothing renders an action whose
// role is not in the registry's set for that key.
var pageActions = map[string][]string{
	domain.PageProducts: {
		domain.ActionProductCreate,
		domain.ActionProductUpdate,
		domain.ActionProductDelete,
	},
	domain.PageOrders: {
		domain.ActionOrderView,
		domain.ActionOrderExport,
		domain.ActionOrderReport,
		domain.ActionOrderUpdateStatus,
	},
	domain.PageInventory: {
		domain.ActionInventoryAdjust,
		domain.ActionInventoryDelete,
	},
	domain.PageSuppliers: {domain.ActionSupplierManage},
	domain.PageUsers:     {domain.ActionUserManage},
	domain.PageCart:      {domain.ActionCartCheckout},
	domain.PageReviews:   {domain.ActionReviewCreate, domain.ActionReviewDelete},
}

// navEntries is the full sidebar in fixed order; Navigation filters it per
// role through the registry.
var navEntries = []ports.NavEntry{
	{Title: "Dashboard", Path: "/dashboard", Page: domain.PageDashboard},
	{Title: "Products", Path: "/products", Page: domain.PageProducts},
	{Title: "Orders", Path: "/orders", Page: domain.PageOrders},
	{Title: "Inventory", Path: "/inventory", Page: domain.PageInventory},
	{Title: "Stock Movements", Path: "/stock-movements", Page: domain.PageStockMovements},
	{Title: "Reports", Path: "/reports", Page: domain.PageReports},
	{Title: "Suppliers", Path: "/suppliers", Page: domain.PageSuppliers},
	{Title: "User Management", Path: "/users", Page: domain.PageUsers},
	{Title: "Settings", Path: "/settings", Page: domain.PageSettings},
}

// ViewService composes role-scoped page views: one variant per (page, role)
// and the action set filtered through the role registry.
type ViewService struct {
	registry *domain.Registry
}

func NewViewService(registry *domain.Registry) *ViewService {
	return &ViewService{registry: registry}
}

func (v *ViewService) ComposePage(role domain.Role, pageKey string) (*ports.PageView, error) {
	if !v.registry.Allows(pageKey, role) {
		return nil, domain.ErrForbidden
	}

	variant := VariantDefault
	if variants, ok := pageVariants[pageKey]; ok {
		if name, ok := variants[role]; ok {
			variant = name
		}
	}

	return &ports.PageView{
		Page:    pageKey,
		Variant: variant,
		Actions: v.filterActions(role, pageActions[pageKey]),
	}, nil
}

func (v *ViewService) Navigation(role domain.Role) []ports.NavEntry {
	entries := make([]ports.NavEntry, 0, len(navEntries))
	for _, e := range navEntries {
		if v.registry.Allows(e.Page, role) {
			entries = append(entries, e)
		}
	}
	return entries
}

// OrderActions computes the per-order action set. Cancel is customer-only
// and closes once the order has shipped, was delivered, or is cancelled;
// administrators update status instead and are never offered cancel.
func (v *ViewService) OrderActions(role domain.Role, order domain.Order) []string {
	actions := make([]string, 0, 3)
	if v.registry.Allows(domain.ActionOrderView, role) {
		actions = append(actions, domain.ActionOrderView)
	}
	if v.registry.Allows(domain.ActionOrderUpdateStatus, role) {
		actions = append(actions, domain.ActionOrderUpdateStatus)
	}
	if v.registry.Allows(domain.ActionOrderCancel, role) && order.Status.Cancellable() {
		actions = append(actions, domain.ActionOrderCancel)
	}
	return actions
}

func (v *ViewService) ProductActions(role domain.Role) []string {
	return v.filterActions(role, pageActions[domain.PageProducts])
}

func (v *ViewService) filterActions(role domain.Role, candidates []string) []string {
	actions := make([]string, 0, len(candidates))
	for _, key := range candidates {
		if v.registry.Allows(key, role) {
			actions = append(actions, key)
		}
	}
	return actions
}
