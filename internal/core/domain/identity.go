package domain

// Identity is the role-bearing record held by an authenticated session.
// Role is immutable for the lifetime of the session.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is the resolved authentication state consumed by the access gate.
// While Resolving is true no access decision may be made.
type Session struct {
	Identity  *Identity
	Resolving bool
}

// Authenticated reports whether the session carries a resolved identity.
func (s Session) Authenticated() bool {
	return !s.Resolving && s.Identity != nil
}

// demoIdentities are the canned demo accounts, one per role. Any non-empty
// credential pair signs in as the matching account when no stored user record
// claims the email.
var demoIdentities = map[Role]Identity{
	RoleAdministrator: {
		ID:     "admin-1",
		Name:   "John Doe",
		Email:  "admin@invenflow.com",
		Role:   RoleAdministrator,
		Avatar: "JD",
	},
	RoleCustomer: {
		ID:    "customer-1",
		Name:  "Jane Smith",
		Email: "customer@invenflow.com",
		Role:  RoleCustomer,
	},
	RoleSupplier: {
		ID:    "supplier-1",
		Name:  "Mike Johnson",
		Email: "supplier@invenflow.com",
		Role:  RoleSupplier,
	},
}

// DemoIdentity returns a copy of the canned identity for the given role.
func DemoIdentity(role Role) (Identity, bool) {
	id, ok := demoIdentities[role]
	return id, ok
}
