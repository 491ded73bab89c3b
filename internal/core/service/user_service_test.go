package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
	"github.com/invenflow/invenflow-api/internal/infrastructure/memory"
)

func newUserFixture(t *testing.T) (*UserService, *memory.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	return NewUserService(users, domain.NewRegistry(), zerolog.Nop()), users
}

func TestUserService_Create(t *testing.T) {
	svc, _ := newUserFixture(t)

	user, err := svc.Create(context.Background(), adminIdent, ports.UserInput{
		Name:     "Alice Adams",
		Email:    "alice@invenflow.com",
		Password: "pass123",
		Role:     domain.RoleSupplier,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatalf("new accounts start active")
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc, _ := newUserFixture(t)

	if _, err := svc.Create(context.Background(), adminIdent, ports.UserInput{Email: "a@b.com", Password: "x"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), adminIdent, ports.UserInput{Name: "Bob", Email: "b@b.com", Password: "x", Role: "root"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc, _ := newUserFixture(t)

	input := ports.UserInput{Name: "Bob", Email: "bob@invenflow.com", Password: "x", Role: domain.RoleCustomer}
	if _, err := svc.Create(context.Background(), adminIdent, input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminIdent, input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_NonAdminForbidden(t *testing.T) {
	svc, _ := newUserFixture(t)

	for _, ident := range []domain.Identity{customerIdent, {ID: "supplier-1", Role: domain.RoleSupplier}} {
		if _, err := svc.List(context.Background(), ident, ports.ListUsersFilter{}); err != domain.ErrForbidden {
			t.Fatalf("%s: expected ErrForbidden, got %v", ident.Role, err)
		}
	}
}

func TestUserService_List_RoleFilter(t *testing.T) {
	svc, _ := newUserFixture(t)

	for _, in := range []ports.UserInput{
		{Name: "C1", Email: "c1@x.com", Password: "x", Role: domain.RoleCustomer},
		{Name: "C2", Email: "c2@x.com", Password: "x", Role: domain.RoleCustomer},
		{Name: "S1", Email: "s1@x.com", Password: "x", Role: domain.RoleSupplier},
	} {
		if _, err := svc.Create(context.Background(), adminIdent, in); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	customers, err := svc.List(context.Background(), adminIdent, ports.ListUsersFilter{Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
}

func TestUserService_Update_RoleImmutable(t *testing.T) {
	svc, users := newUserFixture(t)

	created, err := svc.Create(context.Background(), adminIdent, ports.UserInput{
		Name: "Carol", Email: "carol@x.com", Password: "x", Role: domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), adminIdent, created.ID, ports.UserInput{
		Name: "Carol Jones", Role: domain.RoleAdministrator,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleCustomer {
		t.Fatalf("role must be immutable, got %s", updated.Role)
	}

	stored, _ := users.FindByID(context.Background(), created.ID)
	if stored.Name != "Carol Jones" {
		t.Fatalf("name not updated: %s", stored.Name)
	}
}

func TestUserService_Update_ActiveTriState(t *testing.T) {
	svc, users := newUserFixture(t)

	created, err := svc.Create(context.Background(), adminIdent, ports.UserInput{
		Name: "Dana", Email: "dana@x.com", Password: "pass123", Role: domain.RoleSupplier,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A profile-only update must not touch the active flag.
	updated, err := svc.Update(context.Background(), adminIdent, created.ID, ports.UserInput{Name: "Dana Lee"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Active {
		t.Fatalf("rename-only update deactivated the account")
	}

	// The renamed account can still sign in.
	auth := NewAuthService(users, newStubSessionStore(), "secret", 0, 0, zerolog.Nop())
	if _, err := auth.Login(context.Background(), "dana@x.com", "pass123", domain.RoleSupplier); err != nil {
		t.Fatalf("login after rename-only update failed: %v", err)
	}

	// Explicit deactivation still works.
	inactive := false
	updated, err = svc.Update(context.Background(), adminIdent, created.ID, ports.UserInput{Active: &inactive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Active {
		t.Fatalf("explicit deactivation ignored")
	}
	if _, err := auth.Login(context.Background(), "dana@x.com", "pass123", domain.RoleSupplier); err != domain.ErrInvalidCredentials {
		t.Fatalf("inactive account must not sign in, got %v", err)
	}
}

func TestUserService_Delete_SelfForbidden(t *testing.T) {
	svc, users := newUserFixture(t)

	_ = users.Create(context.Background(), &domain.User{ID: adminIdent.ID, Email: "admin@invenflow.com", Role: domain.RoleAdministrator})
	if err := svc.Delete(context.Background(), adminIdent, adminIdent.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden deleting own account, got %v", err)
	}
}
