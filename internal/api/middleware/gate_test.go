package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

func gateContext(t *testing.T, ident *domain.Identity) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ident != nil {
		c.Set(IdentityKey, *ident)
	}
	return c
}

func TestGate_AllowsPermittedRole(t *testing.T) {
	c := gateContext(t, &domain.Identity{ID: "admin-1", Role: domain.RoleAdministrator})

	called := false
	handler := Gate(domain.NewRegistry(), domain.PageUsers)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGate_AnonymousUnauthorized(t *testing.T) {
	c := gateContext(t, nil)

	handler := Gate(domain.NewRegistry(), domain.PageDashboard)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_WrongRoleForbidden(t *testing.T) {
	c := gateContext(t, &domain.Identity{ID: "customer-1", Role: domain.RoleCustomer})

	handler := Gate(domain.NewRegistry(), domain.PageUsers)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGate_UnknownPageFailsClosed(t *testing.T) {
	c := gateContext(t, &domain.Identity{ID: "admin-1", Role: domain.RoleAdministrator})

	handler := Gate(domain.NewRegistry(), "not-a-page")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGate_PublicPageSkipsAuthentication(t *testing.T) {
	c := gateContext(t, nil)

	called := false
	handler := Gate(domain.NewRegistry(), domain.PageLogin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
