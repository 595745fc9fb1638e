// Package service holds the use cases composing validation, hashing,
// storage, and token issuance.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bkaddour/authd/internal/domain"
	"github.com/bkaddour/authd/internal/password"
	"github.com/bkaddour/authd/internal/token"
	"github.com/bkaddour/authd/internal/validate"
)

// AuthService handles user registration, login, and session token
// operations.
type AuthService struct {
	users  domain.UserRepository
	hasher *password.Hasher
	tokens *token.Issuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *password.Hasher, tokens *token.Issuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user account. Validation runs before any store
// or hashing work. An already-registered email surfaces as
// domain.ErrDuplicateUser, whether caught by the pre-check or by the
// schema's unique constraint.
func (s *AuthService) Register(ctx context.Context, name, email, plaintext string) (*domain.User, error) {
	creds, err := validate.Register(name, email, plaintext)
	if err != nil {
		return nil, err
	}

	// Optimistic pre-check for a friendlier error; the unique constraint
	// below is the binding invariant under concurrent registration.
	if _, err := s.users.GetByEmail(ctx, creds.Email); err == nil {
		return nil, domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         creds.Name,
		Email:        creds.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed session token along
// with the authenticated user. Unknown email and wrong password both
// surface as domain.ErrUnauthorized so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, *domain.User, error) {
	creds, err := validate.Login(email, plaintext)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		return "", nil, domain.ErrUnauthorized
	}

	signed, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return signed, user, nil
}

// VerifyToken validates a session token string and returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*token.Claims, error) {
	return s.tokens.Verify(tokenString)
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// TokenTTL returns the validity window of issued tokens. The login
// cookie lifetime is derived from the same value so the cookie never
// outlives the token.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
