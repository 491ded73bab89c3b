package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/api/metrics"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the customer's cart and checkout.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type checkoutRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type cartResponse struct {
	Cart  domain.Cart `json:"cart"`
	Total float64     `json:"total"`
}

func newCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{Cart: *cart, Total: cart.Total()}
}

// Get returns the requester's cart. GET /v1/cart.
func (h *CartHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.cart.Get(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// AddItem adds a product line to the cart, merging with an existing line for
// the same product. POST /v1/cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cart.AddItem(c.Request().Context(), ident, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// UpdateItem sets a line's quantity; zero removes the line.
// PUT /v1/cart/items/:product_id.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cart.UpdateQuantity(c.Request().Context(), ident, c.Param("product_id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveItem drops a line from the cart. DELETE /v1/cart/items/:product_id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.cart.RemoveItem(c.Request().Context(), ident, c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// Checkout converts the cart into a pending order. POST /v1/checkout.
func (h *CartHandler) Checkout(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	result, err := h.cart.Checkout(c.Request().Context(), ident, ports.CheckoutInput{
		Address: req.Address,
		City:    req.City,
		ZipCode: req.ZipCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCartEmpty):
			metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			metrics.CheckoutsTotal.WithLabelValues("abandoned").Inc()
		default:
			metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusCreated, result)
}
