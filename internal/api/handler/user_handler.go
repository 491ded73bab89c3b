package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,role"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Active   *bool  `json:"active"`
}

type listUsersResponse struct {
	Data []*domain.User `json:"data"`
}

// List returns managed accounts, optionally narrowed by role or search.
// GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter := ports.ListUsersFilter{Search: c.QueryParam("search")}
	if raw := c.QueryParam("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.Role = role
	}

	users, err := h.users.List(c.Request().Context(), ident, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users})
}

// Create issues a new account with a fixed role. POST /v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), ident, ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update changes an account's profile fields and active flag. The role is
// immutable. PUT /v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), ident, c.Param("id"), ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account. DELETE /v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
