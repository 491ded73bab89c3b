package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name       string  `json:"name"        validate:"required"`
	SKU        string  `json:"sku"         validate:"required"`
	Category   string  `json:"category"    validate:"required"`
	Stock      int     `json:"stock"       validate:"gte=0"`
	Price      float64 `json:"price"       validate:"required,gt=0"`
	SupplierID string  `json:"supplier_id"`
}

func (r productRequest) input() ports.ProductInput {
	return ports.ProductInput{
		Name:       r.Name,
		SKU:        r.SKU,
		Category:   r.Category,
		Stock:      r.Stock,
		Price:      r.Price,
		SupplierID: r.SupplierID,
	}
}

type listProductsResponse struct {
	Data []ports.ProductView `json:"data"`
}

// List returns the catalog, optionally narrowed by search, category, or
// supplier. GET /v1/products.
func (h *ProductHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.products.List(c.Request().Context(), ident.Role, ports.ListProductsFilter{
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		SupplierID: c.QueryParam("supplier_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Data: views})
}

// Get returns one product. GET /v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	view, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create adds a product to the catalog. POST /v1/products.
func (h *ProductHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.products.Create(c.Request().Context(), ident.Role, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// Update rewrites a product's fields. PUT /v1/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.products.Update(c.Request().Context(), ident.Role, c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete removes a product. DELETE /v1/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.Request().Context(), ident.Role, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
