package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard view.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get composes the dashboard for the requester's role. GET /v1/dashboard.
func (h *DashboardHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.dashboard.Compose(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
