package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedSession   = errors.New("malformed session data")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrReviewNotFound   = errors.New("review not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)
