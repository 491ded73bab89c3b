package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// ViewHandler exposes the role-scoped view composition endpoints the client
// uses to decide which variant to render and which controls to show.
type ViewHandler struct {
	views ports.ViewService
}

func NewViewHandler(views ports.ViewService) *ViewHandler {
	return &ViewHandler{views: views}
}

type navigationResponse struct {
	Entries []ports.NavEntry `json:"entries"`
}

// Navigation returns the requester's sidebar entries in fixed order.
// GET /v1/views/navigation.
func (h *ViewHandler) Navigation(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{Entries: h.views.Navigation(ident.Role)})
}

// ComposePage resolves the variant and action set for one page.
// GET /v1/views/pages/:page.
func (h *ViewHandler) ComposePage(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.views.ComposePage(ident.Role, c.Param("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
