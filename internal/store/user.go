package store

import (
	"context"

	"github.com/rkarlsb/taskline/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The user must already carry a hashed password.
	// Returns ErrUsernameExists if the username is already taken
	// (case-sensitive exact match).
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// No handler consumes this yet; it completes the lookup surface for
	// resolving the user ID carried in token claims, which an account or
	// token-introspection endpoint would need.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
