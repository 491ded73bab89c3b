package domain

// Page and action keys. Pages gate whole routes; actions gate individual
// operations inside a page and use the "<page>.<verb>" form.
const (
	PageHome           = "home"
	PageLogin          = "login"
	PageDashboard      = "dashboard"
	PageProducts       = "products"
	PageOrders         = "orders"
	PageInventory      = "inventory"
	PageStockMovements = "stock-movements"
	PageReports        = "reports"
	PageSuppliers      = "suppliers"
	PageUsers          = "users"
	PageSettings       = "settings"
	PageCart           = "cart"
	PageCheckout       = "checkout"
	PageReviews        = "reviews"

	ActionProductCreate     = "products.create"
	ActionProductUpdate     = "products.update"
	ActionProductDelete     = "products.delete"
	ActionOrderView         = "orders.view"
	ActionOrderCancel       = "orders.cancel"
	ActionOrderUpdateStatus = "orders.update_status"
	ActionOrderExport       = "orders.export"
	ActionOrderReport       = "orders.report"
	ActionInventoryAdjust   = "inventory.adjust"
	ActionInventoryDelete   = "inventory.delete"
	ActionSupplierManage    = "suppliers.manage"
	ActionUserManage        = "users.manage"
	ActionCartCheckout      = "cart.checkout"
	ActionReviewCreate      = "reviews.create"
	ActionReviewDelete      = "reviews.delete"
)

// Registry is the static page/action to allowed-roles table. A key absent
// from the table is accessible to no role (fail-closed); public pages are
// listed explicitly and bypass the gate entirely.
type Registry struct {
	entries map[string][]Role
	public  map[string]struct{}
}

var everyone = []Role{RoleCustomer, RoleAdministrator, RoleSupplier}

// NewRegistry builds the registry for the InvenFlow route and action table.
func NewRegistry() *Registry {
	return &Registry{
		public: map[string]struct{}{
			PageHome:  {},
			PageLogin: {},
		},
		entries: map[string][]Role{
			PageDashboard:      everyone,
			PageProducts:       everyone,
			PageOrders:         everyone,
			PageReports:        everyone,
			PageSettings:       everyone,
			PageInventory:      {RoleAdministrator, RoleSupplier},
			PageStockMovements: {RoleAdministrator},
			PageSuppliers:      {RoleAdministrator},
			PageUsers:          {RoleAdministrator},
			PageCart:           {RoleCustomer},
			PageCheckout:       {RoleCustomer},
			PageReviews:        {RoleCustomer},

			ActionProductCreate:     {RoleAdministrator, RoleSupplier},
			ActionProductUpdate:     {RoleAdministrator, RoleSupplier},
			ActionProductDelete:     {RoleAdministrator},
			ActionOrderView:         everyone,
			ActionOrderCancel:       {RoleCustomer},
			ActionOrderUpdateStatus: {RoleAdministrator},
			ActionOrderExport:       {RoleCustomer},
			ActionOrderReport:       {RoleAdministrator},
			ActionInventoryAdjust:   {RoleAdministrator},
			ActionInventoryDelete:   {RoleAdministrator},
			ActionSupplierManage:    {RoleAdministrator},
			ActionUserManage:        {RoleAdministrator},
			ActionCartCheckout:      {RoleCustomer},
			ActionReviewCreate:      {RoleCustomer},
			ActionReviewDelete:      {RoleAdministrator},
		},
	}
}

// RolesFor returns the roles permitted for the given key. A lookup miss
// returns an empty set.
func (r *Registry) RolesFor(key string) []Role {
	return r.entries[key]
}

// Allows reports whether the role may access the given page or action key.
func (r *Registry) Allows(key string, role Role) bool {
	for _, allowed := range r.entries[key] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Public reports whether the key is explicitly open to unauthenticated access.
func (r *Registry) Public(key string) bool {
	_, ok := r.public[key]
	return ok
}
