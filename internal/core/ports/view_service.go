package ports

import (
	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// NavEntry is one sidebar navigation item.
type NavEntry struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Page  string `json:"page"`
}

// PageView is the composed view for one page and role: which variant the
// client should render and which action keys are exposed.
type PageView struct {
	Page    string   `json:"page"`
	Variant string   `json:"variant"`
	Actions []string `json:"actions"`
}

// ViewService selects role-specific page variants and filters action sets.
// All methods are pure: the same (role, entity state) always yields the same
// result.
type ViewService interface {
	// ComposePage resolves the variant and static action set for a page.
	// Pages outside the role's registry set yield ErrForbidden.
	ComposePage(role domain.Role, pageKey string) (*PageView, error)
	// Navigation returns the role-filtered sidebar entries in fixed order.
	Navigation(role domain.Role) []NavEntry
	// OrderActions computes per-order actions for the role, honouring the
	// order's status (cancel closes once shipped, delivered, or cancelled).
	OrderActions(role domain.Role, order domain.Order) []string
	// ProductActions computes per-product actions for the role.
	ProductActions(role domain.Role) []string
}
