package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// stubAuth resolves a fixed token to a fixed identity.
type stubAuth struct {
	token string
	ident domain.Identity
}

func (s *stubAuth) Login(context.Context, string, string, domain.Role) (*ports.LoginResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuth) Restore(_ context.Context, token string) (*domain.Identity, error) {
	if token == s.token {
		ident := s.ident
		return &ident, nil
	}
	return nil, nil
}

func (s *stubAuth) Logout(context.Context, string) error { return nil }

func TestSession_RestoresIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuth{token: "tok-1", ident: domain.Identity{ID: "customer-1", Role: domain.RoleCustomer}}

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		ident, ok := c.Get(IdentityKey).(domain.Identity)
		if !ok {
			t.Fatalf("identity not set")
		}
		if ident.ID != "customer-1" {
			t.Fatalf("wrong identity: %s", ident.ID)
		}
		if c.Get(TokenKey) != "tok-1" {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(&stubAuth{})(func(c echo.Context) error {
		called = true
		if _, ok := c.Get(IdentityKey).(domain.Identity); ok {
			t.Fatalf("identity should not be set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_RevokedTokenTreatedAsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuth{token: "other-token"}

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		if _, ok := c.Get(IdentityKey).(domain.Identity); ok {
			t.Fatalf("revoked token must not yield an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_IgnoresNonBearerScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubAuth{})(func(c echo.Context) error {
		if _, ok := c.Get(IdentityKey).(domain.Identity); ok {
			t.Fatalf("non-bearer scheme must not resolve")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
