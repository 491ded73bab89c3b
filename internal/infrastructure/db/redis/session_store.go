package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// keyPrefix namespaces session entries in a shared Redis instance.
const keyPrefix = "invenflow:session:"

// SessionStore persists serialized identities keyed by session id. It is the
// authoritative record of live sessions: deleting a key revokes the session
// no matter what token the client still holds.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, identity domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Find(ctx context.Context, sessionID string) (*domain.Identity, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, domain.ErrMalformedSession
	}
	if !identity.Role.Valid() {
		// Stored under an old or tampered format. Treat as corrupt so the
		// caller discards the session.
		return nil, domain.ErrMalformedSession
	}
	return &identity, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return keyPrefix + sessionID
}
