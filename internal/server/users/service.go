// Package users implements the account usecase: registration and login
// plus direct record access for the HTTP profile endpoints. It owns
// input validation and the translation of store failures into domain
// errors, and it never touches the session store — issuing a session is
// the caller's responsibility, which keeps this layer protocol-agnostic.
package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/writehub/auth/internal/common"
	"github.com/writehub/auth/internal/logging"
	"github.com/writehub/auth/internal/server/models"
	usersrepo "github.com/writehub/auth/internal/server/repositories/users"
)

// MinPasswordLength is the smallest accepted password, in bytes.
const MinPasswordLength = 6

// Hasher is the credential engine contract: the only component allowed
// to see plaintext passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

// Service orchestrates account operations over the user store and the
// credential engine.
type Service struct {
	repo   usersrepo.Repository
	hasher Hasher
	logger logging.Logger
}

func NewService(repo usersrepo.Repository, hasher Hasher, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger.With("module", "users_service"),
	}
}

// Register validates the input, hashes the password and persists a new
// user. A duplicate email surfaces as common.ErrorEmailExists; the
// database unique constraint, not the validation here, is what makes
// concurrent registrations race-safe.
func (s *Service) Register(ctx context.Context, email, username, plain string) (*models.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, common.NewValidationError("username", "must not be empty")
	}
	if len(plain) < MinPasswordLength {
		return nil, common.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and returns the matching user. An
// unknown email yields common.ErrorNotFound and a wrong password
// common.ErrorInvalidCredentials; the two outcomes are deliberately
// kept distinct as separate domain errors.
func (s *Service) Login(ctx context.Context, email, plain string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := s.hasher.Verify(plain, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrorInvalidCredentials
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// Get returns the user record for id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateUsername changes the user's username. Email and password are
// not mutable through any exposed operation.
func (s *Service) UpdateUsername(ctx context.Context, id, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.NewValidationError("username", "must not be empty")
	}

	return s.repo.UpdateUsername(ctx, id, username)
}

// Delete removes the user record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateEmail(email string) error {
	if email == "" {
		return common.NewValidationError("email", "must not be empty")
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return common.NewValidationError("email", "is not a valid address")
	}
	return nil
}
