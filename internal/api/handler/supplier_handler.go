package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// SupplierHandler handles HTTP requests for supplier management.
type SupplierHandler struct {
	suppliers ports.SupplierService
}

func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

type supplierRequest struct {
	Name    string `json:"name"    validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
}

type listSuppliersResponse struct {
	Data []*domain.Supplier `json:"data"`
}

// List returns all suppliers. GET /v1/suppliers.
func (h *SupplierHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	suppliers, err := h.suppliers.List(c.Request().Context(), ident.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSuppliersResponse{Data: suppliers})
}

// Create registers a supplier. POST /v1/suppliers.
func (h *SupplierHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.suppliers.Create(c.Request().Context(), ident.Role, domain.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

// Update rewrites a supplier's fields. PUT /v1/suppliers/:id.
func (h *SupplierHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.suppliers.Update(c.Request().Context(), ident.Role, domain.Supplier{
		ID:      c.Param("id"),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// Delete removes a supplier. DELETE /v1/suppliers/:id.
func (h *SupplierHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.suppliers.Delete(c.Request().Context(), ident.Role, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
