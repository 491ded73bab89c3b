package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders. Customer scoping and the
// status state machine live in the service; this layer only shapes requests
// and responses.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type listOrdersResponse struct {
	Data []ports.OrderView `json:"data"`
}

type cancelOrderResponse struct {
	ports.OrderView
	Message string `json:"message"`
}

// List returns orders visible to the requester: customers see only their
// own. GET /v1/orders.
func (h *OrderHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter := ports.ListOrdersFilter{Search: c.QueryParam("search")}
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := domain.ParseOrderStatus(raw)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
		}
		filter.Status = status
	}

	views, err := h.orders.List(c.Request().Context(), ident, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Data: views})
}

// Get returns one order with the requester's available actions.
// GET /v1/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.orders.Get(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Cancel cancels a pending or processing order. Customer action.
// POST /v1/orders/:id/cancel.
func (h *OrderHandler) Cancel(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.orders.Cancel(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.OrdersCancelledTotal.Inc()
	return c.JSON(http.StatusOK, cancelOrderResponse{
		OrderView: *view,
		Message:   fmt.Sprintf("Order %s has been cancelled successfully.", view.ID),
	})
}

// UpdateStatus advances an order through the status state machine.
// Administrator action. PATCH /v1/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	view, err := h.orders.UpdateStatus(c.Request().Context(), ident, c.Param("id"), next)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
