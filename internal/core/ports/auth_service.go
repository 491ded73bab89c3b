package ports

import (
	"context"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string
	Identity domain.Identity
	// RedirectTo is the navigation intent for the client after login.
	RedirectTo string
}

type AuthService interface {
	// Login authenticates a credential pair for the requested role and opens
	// a session. Empty email or password fails with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string, role domain.Role) (*LoginResult, error)
	// Restore resolves a bearer token back into its identity. Absent,
	// revoked, or malformed sessions resolve to (nil, nil): logged out, not
	// an error.
	Restore(ctx context.Context, token string) (*domain.Identity, error)
	// Logout revokes the session behind the token. Idempotent.
	Logout(ctx context.Context, token string) error
}
