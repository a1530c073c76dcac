// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification with
// signed-token issuance, and session refresh checks.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentormatch/mentorauth/internal/common"
	"github.com/mentormatch/mentorauth/internal/server/auth"
	"github.com/mentormatch/mentorauth/internal/server/config"
	"github.com/mentormatch/mentorauth/internal/server/models"
	"github.com/mentormatch/mentorauth/internal/server/repositories/users"
)

// bcryptCost keeps hashing in the tens-of-milliseconds range.
const bcryptCost = 10

// RegisterRequest carries the fields accepted at registration. Password is
// plaintext here and is hashed before anything is stored.
type RegisterRequest struct {
	ID       string
	Email    string
	Username string
	Password string
	Name     string
	Role     models.Role
}

// UserService provides authentication-related operations:
//   - Register: create users with hashed passwords
//   - Login: verify credentials and mint a signed session token
//   - Refresh: confirm a cached session's subject still exists
//
// The service is stateless per request; all state lives in the repository.
type UserService struct {
	users                 users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using the repository and server
// config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:                 repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the request, hashes the password, and creates the user.
// Duplicate email/username surfaces as common.ErrDuplicateIdentity via the
// repository's unique constraints. No token is issued at registration; login
// is a separate explicit step.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	user := &models.User{
		ID:           id,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Login verifies the password against the stored hash and, on success,
// returns the user together with a signed session token. An unknown email
// and a wrong password produce the same error, so callers cannot learn
// whether an email is registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not fail the login.
	_ = s.users.UpdateLastLogin(ctx, user.ID)

	token, err := auth.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Refresh confirms that the subject behind a cached session still exists so
// the client may extend its local validity window. The password is not
// re-verified.
func (s *UserService) Refresh(ctx context.Context, username string) error {
	_, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrSessionInvalid
		}
		return common.ErrorInternal
	}
	return nil
}

func validateRegisterRequest(req RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return common.NewFieldError("email", "required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return common.NewFieldError("email", "malformed")
	}
	if strings.TrimSpace(req.Username) == "" {
		return common.NewFieldError("username", "required")
	}
	if req.Password == "" {
		return common.NewFieldError("password", "required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return common.NewFieldError("name", "required")
	}
	if !req.Role.Valid() {
		return common.NewFieldError("role", "unknown role")
	}
	return nil
}
