package domain

// Role determines which pages and actions an identity may reach.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
	RoleSupplier      Role = "supplier"
)

// Roles lists every known role in declaration order.
var Roles = []Role{RoleCustomer, RoleAdministrator, RoleSupplier}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdministrator, RoleSupplier:
		return Role(s), nil
	}
	return "", ErrInvalidCredentials
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
