package domain

import "testing"

func TestEvaluate_PendingWhileResolving(t *testing.T) {
	reg := NewRegistry()
	s := Session{Resolving: true}

	if d := Evaluate(reg, s, PageDashboard); d != DecisionPending {
		t.Fatalf("expected pending, got %s", d)
	}
}

func TestEvaluate_PublicPagesSkipTheGate(t *testing.T) {
	reg := NewRegistry()

	// Public pages allow even while the session is still resolving.
	if d := Evaluate(reg, Session{Resolving: true}, PageLogin); d != DecisionAllowed {
		t.Fatalf("expected allowed for login, got %s", d)
	}
	if d := Evaluate(reg, Session{}, PageHome); d != DecisionAllowed {
		t.Fatalf("expected allowed for home, got %s", d)
	}
}

func TestEvaluate_DeniesAnonymous(t *testing.T) {
	reg := NewRegistry()

	if d := Evaluate(reg, Session{}, PageDashboard); d != DecisionDenied {
		t.Fatalf("expected denied, got %s", d)
	}
}

func TestEvaluate_RoleMembership(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		role Role
		page string
		want Decision
	}{
		{RoleCustomer, PageDashboard, DecisionAllowed},
		{RoleCustomer, PageCart, DecisionAllowed},
		{RoleCustomer, PageInventory, DecisionDenied},
		{RoleCustomer, PageUsers, DecisionDenied},
		{RoleSupplier, PageInventory, DecisionAllowed},
		{RoleSupplier, PageStockMovements, DecisionDenied},
		{RoleSupplier, PageCart, DecisionDenied},
		{RoleAdministrator, PageUsers, DecisionAllowed},
		{RoleAdministrator, PageSuppliers, DecisionAllowed},
		{RoleAdministrator, PageCheckout, DecisionDenied},
	}

	for _, tc := range cases {
		ident := Identity{ID: "u1", Role: tc.role}
		got := Evaluate(reg, Session{Identity: &ident}, tc.page)
		if got != tc.want {
			t.Fatalf("%s on %s: expected %s, got %s", tc.role, tc.page, tc.want, got)
		}
	}
}

func TestEvaluate_UnknownPageFailsClosed(t *testing.T) {
	reg := NewRegistry()
	ident := Identity{ID: "admin-1", Role: RoleAdministrator}

	if d := Evaluate(reg, Session{Identity: &ident}, "billing"); d != DecisionDenied {
		t.Fatalf("expected denied for unregistered page, got %s", d)
	}
	if got := reg.RolesFor("billing"); len(got) != 0 {
		t.Fatalf("expected empty role set for unregistered page, got %v", got)
	}
}
