// Package users implements registration, credential checks, and account
// lookups over the credential store.
package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pingreng/pingr-server/internal/shared"
)

// bcryptCost matches the salt rounds the original deployment hashed with.
const bcryptCost = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register validates the fields, rejects duplicates, hashes the password,
// and creates the account.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, shared.Errorf(shared.ErrConflict, "Email is already registered.")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, shared.Errorf(shared.ErrConflict, "Username is already in use.")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	return s.repo.Create(ctx, user)
}

// Authenticate resolves a username/password pair to the stored account.
// An unknown username and a wrong password produce the same generic error so
// the response never reveals which field was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	invalid := shared.Errorf(shared.ErrUnauthorized, "Invalid username or password.")

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	return user, nil
}

// Get returns the account for an authenticated id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
