// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"classifieds/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user and fills in its generated ID and creation time.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByToken resolves the user currently holding the given bearer token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// SetToken replaces the stored token of a user.
	SetToken(ctx context.Context, userID int64, token string) error

	// ClearToken removes the stored token so it no longer authenticates.
	ClearToken(ctx context.Context, userID int64) error

	// Delete removes the user. Their ads are removed with them.
	Delete(ctx context.Context, id int64) error
}
