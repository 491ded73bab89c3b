package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

const dashboardPath = "/dashboard"

// AuthService implements login, session restore, and logout on top of a
// SessionStore. Tokens are HS256 JWTs carrying the session id; the session
// record in the store is authoritative, so deleting it revokes the token.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	loginDelay time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL, loginDelay time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		loginDelay: loginDelay,
		logger:     logger,
	}
}

// Login authenticates a credential pair for the requested role. A managed
// account claims its email: the stored bcrypt hash must match and the account
// role is authoritative. Unclaimed emails fall back to the demo identity for
// the requested role, where any non-empty pair succeeds.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	identity, err := s.resolveIdentity(ctx, email, password, role)
	if err != nil {
		return nil, err
	}

	sid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	sessionID := sid.String()

	if err := s.sessions.Save(ctx, sessionID, *identity, s.sessionTTL); err != nil {
		return nil, err
	}

	token, err := s.signToken(sessionID, identity)
	if err != nil {
		// Don't leave an orphaned session behind a token that never existed.
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, err
	}

	s.logger.Info().
		Str("user_id", identity.ID).
		Str("role", string(identity.Role)).
		Msg("session opened")

	return &ports.LoginResult{
		Token:      token,
		Identity:   *identity,
		RedirectTo: dashboardPath,
	}, nil
}

// Restore resolves a bearer token back into its identity. Every failure mode
// short of an infrastructure error resolves to logged-out rather than
// surfacing to the caller: a bad token, a revoked session, and a stored value
// that no longer parses all yield (nil, nil).
func (s *AuthService) Restore(ctx context.Context, token string) (*domain.Identity, error) {
	sessionID, ok := s.parseToken(token)
	if !ok {
		return nil, nil
	}

	identity, err := s.sessions.Find(ctx, sessionID)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, domain.ErrSessionNotFound):
		return nil, nil
	case errors.Is(err, domain.ErrMalformedSession):
		// Corrupted entry: drop it so the next restore is a clean miss.
		s.logger.Warn().Str("session_id", sessionID).Msg("discarding malformed session")
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, nil
	}
	return nil, err
}

// Logout revokes the session behind the token. Tokens that never resolved to
// a session are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, ok := s.parseToken(token)
	if !ok {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", sessionID).Msg("session revoked")
	return nil
}

func (s *AuthService) resolveIdentity(ctx context.Context, email, password string, role domain.Role) (*domain.Identity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if user != nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		// Role is fixed per account; requesting another role is a credential
		// mismatch, not a role switch.
		if user.Role != role || !user.Active {
			return nil, domain.ErrInvalidCredentials
		}
		identity := user.Identity()
		return &identity, nil
	}

	demo, ok := domain.DemoIdentity(role)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &demo, nil
}

// simulateLatency stands in for the upstream identity provider round-trip.
// Replaced by a real call when one exists; callers already tolerate the wait.
func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.loginDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AuthService) signToken(sessionID string, identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  identity.ID,
		"role": string(identity.Role),
		"sid":  sessionID,
		"exp":  time.Now().Add(s.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseToken extracts the session id from a token. Invalid tokens report ok
// false rather than an error: to the session layer they are simply absent.
func (s *AuthService) parseToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}
	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
