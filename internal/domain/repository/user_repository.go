package repository

import (
	"context"

	"github.com/service-directory/internal/domain"
)

// UserRepository exposes account storage.
type UserRepository interface {
	// Create inserts a user and fills the generated fields.
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail returns ErrInvalidCredentials when no such account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Exists reports whether an account with the given email or username is
	// already registered.
	Exists(ctx context.Context, email, username string) (bool, error)
}
