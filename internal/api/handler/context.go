package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/middleware"
	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: a handler behind the
// gate should always see one, but a route wired without the gate must still
// reject anonymous requests.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return ident, nil
}

// ctxToken returns the bearer token the Session middleware resolved, or ""
// for anonymous requests.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.TokenKey).(string)
	return token
}
