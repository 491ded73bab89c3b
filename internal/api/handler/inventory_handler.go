package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// InventoryHandler handles HTTP requests for stock levels and manual
// adjustments.
type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type adjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=in out"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Note      string `json:"note"`
}

type listInventoryResponse struct {
	Data []ports.ProductView `json:"data"`
}

type listMovementsResponse struct {
	Data []*domain.StockMovement `json:"data"`
}

// List returns the stock view of the catalog. GET /v1/inventory.
func (h *InventoryHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.inventory.List(c.Request().Context(), ident.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listInventoryResponse{Data: views})
}

// Adjust records a manual stock movement. Administrator action.
// POST /v1/inventory/adjustments.
func (h *InventoryHandler) Adjust(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movementType := domain.MovementIn
	if req.Type == "out" {
		movementType = domain.MovementOut
	}

	movement, err := h.inventory.Adjust(c.Request().Context(), ident, ports.AdjustStockInput{
		ProductID: req.ProductID,
		Type:      movementType,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		return err
	}

	metrics.StockAdjustmentsTotal.WithLabelValues(string(movementType)).Inc()
	return c.JSON(http.StatusCreated, movement)
}

// Movements returns the stock movement history, newest first.
// GET /v1/inventory/movements.
func (h *InventoryHandler) Movements(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	movements, err := h.inventory.Movements(c.Request().Context(), ident.Role, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listMovementsResponse{Data: movements})
}
