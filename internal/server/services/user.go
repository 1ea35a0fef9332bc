// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues JWTs bound to
// the user's identity.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/server/auth"
	"github.com/streamhub/streamhub/internal/server/config"
	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/server/repositories/users"
	"github.com/streamhub/streamhub/internal/shared"
)

// AuthResult bundles the user record and the bearer token issued for it.
type AuthResult struct {
	User  *models.User
	Token string
}

// UserService provides authentication-related operations:
// - Register: create a user and issue a token
// - Login: verify credentials and issue a token
type UserService struct {
	users         users.Repository
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService from the users repository and
// server config.
func NewUserService(repo users.Repository, logger logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		users:         repo,
		logger:        logger.With("module", "user_service"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates a new user with a hashed password and issues a token bound
// to the new user's id. A conflicting email yields shared.ErrEmailAlreadyExists;
// uniqueness is enforced by the store, so the insert itself is the check.
func (s *UserService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return nil, shared.ErrInternal
	}

	user, err := s.users.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrEmailAlreadyExists
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, shared.ErrInternal
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return nil, shared.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies the password against the stored hash and issues a token for
// the existing user. Unknown emails fail with shared.ErrUserNotFound and bad
// passwords with shared.ErrInvalidCredentials, per the API contract.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUserNotFound
		}
		s.logger.Error(ctx, "error finding user", "error", err)
		return nil, shared.ErrInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return nil, shared.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}
