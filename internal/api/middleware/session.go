package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// Context keys set by the Session middleware and read by handlers.
const (
	IdentityKey = "identity"
	TokenKey    = "token"
)

// Session restores the identity behind the request's bearer token, when one
// is present, and stores it in the echo context. Requests without a token
// pass through untouched; a token that no longer resolves to a live session
// is treated the same way. The gate decides what anonymous requests may
// reach, so neither case is an error here.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return next(c)
			}

			ident, err := auth.Restore(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if ident == nil {
				metrics.SessionsRestoredTotal.WithLabelValues("revoked").Inc()
				return next(c)
			}

			metrics.SessionsRestoredTotal.WithLabelValues("ok").Inc()
			c.Set(IdentityKey, *ident)
			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a bearer scheme.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
