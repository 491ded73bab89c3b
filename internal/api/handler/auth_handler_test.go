package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/middleware"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// stubAuthService records the last call and returns canned results.
type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error

	loggedOut []string
}

func (s *stubAuthService) Login(_ context.Context, _, _ string, _ domain.Role) (*ports.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Restore(context.Context, string) (*domain.Identity, error) {
	return nil, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func newAuthContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginResult: &ports.LoginResult{
			Token:      "tok-1",
			Identity:   domain.Identity{ID: "customer-1", Role: domain.RoleCustomer},
			RedirectTo: "/dashboard",
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, `{"email":"a@b.com","password":"x","role":"customer"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"token":"tok-1"`) {
		t.Fatalf("token missing from response: %s", body)
	}
	if !strings.Contains(body, `"redirect_to":"/dashboard"`) {
		t.Fatalf("redirect hint missing from response: %s", body)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{"password":"x","role":"customer"}`,
		`{"email":"a@b.com","role":"customer"}`,
		`{"email":"a@b.com","password":"x"}`,
		`{"email":"a@b.com","password":"x","role":"root"}`,
	} {
		c, _ := newAuthContext(t, http.MethodPost, body)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newAuthContext(t, http.MethodPost, `{"email":"a@b.com","password":"x","role":"customer"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Anonymous request: authenticated=false, still 200.
	c, rec := newAuthContext(t, http.MethodGet, "")
	if err := h.Session(c); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("expected unauthenticated state: %s", rec.Body.String())
	}

	// With a resolved identity.
	c, rec = newAuthContext(t, http.MethodGet, "")
	c.Set(middleware.IdentityKey, domain.Identity{ID: "admin-1", Role: domain.RoleAdministrator})
	if err := h.Session(c); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
		t.Fatalf("expected authenticated state: %s", rec.Body.String())
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "")
	c.Set(middleware.TokenKey, "tok-9")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "tok-9" {
		t.Fatalf("logout not forwarded: %v", svc.loggedOut)
	}

	// Anonymous logout is a no-op, still 204.
	c, rec = newAuthContext(t, http.MethodPost, "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("anonymous logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
