package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type listReviewsResponse struct {
	Data []*domain.Review `json:"data"`
}

// ListByProduct returns the reviews of one product, newest first.
// GET /v1/products/:id/reviews.
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	reviews, err := h.reviews.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listReviewsResponse{Data: reviews})
}

// Create records a customer's review of a product. POST /v1/reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), ident, ports.ReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Delete removes a review. Administrator moderation action.
// DELETE /v1/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.reviews.Delete(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
