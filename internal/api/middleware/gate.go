package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// Gate guards a route group with the role registry's entry for one page key.
// Anonymous requests to a guarded page fail with ErrUnauthorized (the client
// should redirect to login); authenticated requests whose role is outside the
// page's set fail with ErrForbidden. Unknown page keys deny everyone.
func Gate(registry *domain.Registry, pageKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := domain.Session{}
			if ident, ok := c.Get(IdentityKey).(domain.Identity); ok {
				sess.Identity = &ident
			}

			decision := domain.Evaluate(registry, sess, pageKey)
			metrics.GateDecisionsTotal.WithLabelValues(pageKey, decision.String()).Inc()

			if decision != domain.DecisionAllowed {
				if !sess.Authenticated() {
					return domain.ErrUnauthorized
				}
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
