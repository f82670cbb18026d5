// Package auth handles credential validation against the users table.
// It is framework-agnostic and can be used from any HTTP handler or CLI.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fineart/internal/domain/entity"
	"fineart/internal/repository"
)

// ErrInvalidCredentials is returned when the email or password does not match.
// Unknown emails and wrong passwords produce the same error so callers cannot
// distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials represents authentication credentials.
type Credentials struct {
	Email    string
	Password string
}

// Service validates credentials against stored bcrypt hashes.
type Service struct {
	Users repository.UserRepository

	// Now is overridable in tests. Defaults to time.Now().UTC.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Authenticate checks the credentials and returns the matching user.
// Returns ErrInvalidCredentials when either the email is unknown or the
// password does not match the stored hash.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	user, err := s.Users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SeedAdmin ensures an admin user with the given email exists.
// It is a no-op when the user is already present, so it is safe to run on
// every startup.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("SeedAdmin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("SeedAdmin: hash password: %w", err)
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    s.now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return fmt.Errorf("SeedAdmin: %w", err)
	}
	return nil
}
