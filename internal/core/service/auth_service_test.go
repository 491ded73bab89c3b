package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

type stubSessionStore struct {
	entries   map[string]domain.Identity
	malformed map[string]bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		entries:   make(map[string]domain.Identity),
		malformed: make(map[string]bool),
	}
}

func (s *stubSessionStore) Save(_ context.Context, sid string, identity domain.Identity, _ time.Duration) error {
	s.entries[sid] = identity
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, sid string) (*domain.Identity, error) {
	if s.malformed[sid] {
		return nil, domain.ErrMalformedSession
	}
	identity, ok := s.entries[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := identity
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.entries, sid)
	delete(s.malformed, sid)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, _ ports.ListUsersFilter) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, exists := r.users[u.ID]; exists {
		return domain.ErrUserExists
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newAuthService(store *stubSessionStore, users *stubUserRepo) *AuthService {
	return NewAuthService(users, store, "test-secret", time.Hour, 0, zerolog.Nop())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	store := newStubSessionStore()
	svc := newAuthService(store, newStubUserRepo())

	if _, err := svc.Login(context.Background(), "", "x", domain.RoleCustomer); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "x", "", domain.RoleCustomer); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatalf("failed login must not open a session")
	}
}

func TestAuthService_Login_UnknownRole(t *testing.T) {
	svc := newAuthService(newStubSessionStore(), newStubUserRepo())

	if _, err := svc.Login(context.Background(), "a@b.com", "pw", domain.Role("root")); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DemoIdentityPerRole(t *testing.T) {
	svc := newAuthService(newStubSessionStore(), newStubUserRepo())

	res, err := svc.Login(context.Background(), "a@b.com", "pw", domain.RoleAdministrator)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Identity.Role != domain.RoleAdministrator {
		t.Fatalf("expected administrator, got %s", res.Identity.Role)
	}
	if res.Identity.ID != "admin-1" || res.Identity.Avatar != "JD" {
		t.Fatalf("unexpected demo identity: %+v", res.Identity)
	}
	if res.Token == "" {
		t.Fatalf("expected token")
	}
	if res.RedirectTo != "/dashboard" {
		t.Fatalf("expected dashboard redirect, got %s", res.RedirectTo)
	}
}

func TestAuthService_RestoreAfterLogin(t *testing.T) {
	store := newStubSessionStore()
	users := newStubUserRepo()
	svc := newAuthService(store, users)

	res, err := svc.Login(context.Background(), "a@b.com", "pw", domain.RoleAdministrator)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh service sharing the store stands in for a new process.
	restored, err := newAuthService(store, users).Restore(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored == nil || restored.Role != domain.RoleAdministrator {
		t.Fatalf("expected restored administrator, got %+v", restored)
	}
}

func TestAuthService_Restore_InvalidToken(t *testing.T) {
	svc := newAuthService(newStubSessionStore(), newStubUserRepo())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		identity, err := svc.Restore(context.Background(), token)
		if err != nil {
			t.Fatalf("restore must not error on bad token %q: %v", token, err)
		}
		if identity != nil {
			t.Fatalf("expected absent identity for token %q", token)
		}
	}
}

func TestAuthService_Restore_MalformedSession(t *testing.T) {
	store := newStubSessionStore()
	svc := newAuthService(store, newStubUserRepo())

	res, err := svc.Login(context.Background(), "a@b.com", "pw", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	for sid := range store.entries {
		store.malformed[sid] = true
	}

	// Malformed stored data resolves to logged out, twice (idempotent), and
	// never as an error.
	for i := 0; i < 2; i++ {
		identity, err := svc.Restore(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("restore %d errored: %v", i, err)
		}
		if identity != nil {
			t.Fatalf("restore %d: expected absent identity, got %+v", i, identity)
		}
	}
	if len(store.entries) != 0 {
		t.Fatalf("malformed entry should have been discarded")
	}
}

func TestAuthService_LogoutRevokes(t *testing.T) {
	store := newStubSessionStore()
	svc := newAuthService(store, newStubUserRepo())

	res, err := svc.Login(context.Background(), "a@b.com", "pw", domain.RoleSupplier)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatalf("logout must remove the session record")
	}

	identity, err := svc.Restore(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("restore after logout errored: %v", err)
	}
	if identity != nil {
		t.Fatalf("token must be dead after logout, got %+v", identity)
	}

	// Logging out twice is a no-op.
	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("second logout errored: %v", err)
	}
}

func TestAuthService_Login_ManagedAccount(t *testing.T) {
	store := newStubSessionStore()
	users := newStubUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	_ = users.Create(context.Background(), &domain.User{
		ID:           "user-42",
		Name:         "Alice Adams",
		Email:        "alice@invenflow.com",
		PasswordHash: string(hash),
		Role:         domain.RoleSupplier,
		Active:       true,
	})
	svc := newAuthService(store, users)

	// Wrong password is rejected even though demo logins accept anything:
	// a managed account owns its email.
	if _, err := svc.Login(context.Background(), "alice@invenflow.com", "wrong", domain.RoleSupplier); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Requesting a different role than the account's is rejected.
	if _, err := svc.Login(context.Background(), "alice@invenflow.com", "s3cret", domain.RoleAdministrator); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for role mismatch, got %v", err)
	}

	res, err := svc.Login(context.Background(), "alice@invenflow.com", "s3cret", domain.RoleSupplier)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Identity.ID != "user-42" || res.Identity.Role != domain.RoleSupplier {
		t.Fatalf("unexpected identity: %+v", res.Identity)
	}
}

func TestAuthService_Login_CancelledDuringDelay(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), store, "test-secret", time.Hour, 5*time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Login(ctx, "a@b.com", "pw", domain.RoleCustomer); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatalf("cancelled login must leave no session behind")
	}
}
