package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,role"`
}

type loginResponse struct {
	Token      string          `json:"token"`
	User       domain.Identity `json:"user"`
	RedirectTo string          `json:"redirect_to"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

// Login authenticates a credential pair for the requested role and opens a
// session. POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(req.Role, "denied").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(req.Role, "ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:      result.Token,
		User:       result.Identity,
		RedirectTo: result.RedirectTo,
	})
}

// Session reports the authentication state behind the request's bearer token.
// GET /v1/auth/session. Always 200: "not logged in" is a state, not an error.
func (h *AuthHandler) Session(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: &ident})
}

// Logout revokes the session behind the request's bearer token. Idempotent:
// an absent or already-revoked session still yields 204.
// POST /v1/auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ctxToken(c)
	if token == "" {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
