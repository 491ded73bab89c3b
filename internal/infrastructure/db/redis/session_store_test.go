package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func TestSessionStore_SaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ident := domain.Identity{
		ID:     "admin-1",
		Name:   "John Doe",
		Email:  "admin@invenflow.com",
		Role:   domain.RoleAdministrator,
		Avatar: "JD",
	}
	if err := store.Save(ctx, "sess-1", ident, time.Hour); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Find(ctx, "sess-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if *got != ident {
		t.Fatalf("identity mismatch: got %+v", got)
	}
}

func TestSessionStore_FindMissing(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Find(context.Background(), "never-saved"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "sess-2", domain.Identity{ID: "customer-1", Role: domain.RoleCustomer}, time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Find(ctx, "sess-2"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestSessionStore_MalformedPayload(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set(keyPrefix+"sess-3", "{not json")

	if _, err := store.Find(context.Background(), "sess-3"); !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}
}

func TestSessionStore_InvalidRoleTreatedAsMalformed(t *testing.T) {
	store, mr := newTestStore(t)

	// Valid JSON, but not a session payload this version understands.
	mr.Set(keyPrefix+"sess-4", `{"id":"x","role":"superuser"}`)

	if _, err := store.Find(context.Background(), "sess-4"); !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}
}

func TestSessionStore_DeleteRevokes(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "sess-5", domain.Identity{ID: "supplier-1", Role: domain.RoleSupplier}, time.Hour); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "sess-5"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Find(ctx, "sess-5"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, "sess-5"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
}
