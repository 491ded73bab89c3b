package ports

import (
	"context"
	"time"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// SessionStore persists the serialized identity of each live session under
// its session id. It is the single source of truth for "who is currently
// authenticated": deleting an entry revokes the session regardless of any
// token the client still holds.
type SessionStore interface {
	// Save writes the identity under the session id with the given TTL.
	Save(ctx context.Context, sessionID string, identity domain.Identity, ttl time.Duration) error
	// Find restores the identity for the session id. A missing entry yields
	// domain.ErrSessionNotFound; a stored value that fails to deserialize
	// yields domain.ErrMalformedSession.
	Find(ctx context.Context, sessionID string) (*domain.Identity, error)
	// Delete removes the entry. Deleting an absent entry is not an error.
	Delete(ctx context.Context, sessionID string) error
}
