package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// UserService is the administrator-only account management surface.
type UserService struct {
	users    ports.UserRepository
	registry *domain.Registry
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, registry *domain.Registry, logger zerolog.Logger) *UserService {
	return &UserService{users: users, registry: registry, logger: logger}
}

func (s *UserService) List(ctx context.Context, ident domain.Identity, filter ports.ListUsersFilter) ([]*domain.User, error) {
	if !s.registry.Allows(domain.ActionUserManage, ident.Role) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx, filter)
}

func (s *UserService) Create(ctx context.Context, ident domain.Identity, input ports.UserInput) (*domain.User, error) {
	if !s.registry.Allows(domain.ActionUserManage, ident.Role) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &domain.User{
		ID:           "user-" + id.String()[:8],
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// Update changes profile fields and the active flag. The role of an existing
// account is immutable: roles are fixed when an account is issued.
func (s *UserService) Update(ctx context.Context, ident domain.Identity, id string, input ports.UserInput) (*domain.User, error) {
	if !s.registry.Allows(domain.ActionUserManage, ident.Role) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, ident domain.Identity, id string) error {
	if !s.registry.Allows(domain.ActionUserManage, ident.Role) {
		return domain.ErrForbidden
	}
	if id == ident.ID {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
