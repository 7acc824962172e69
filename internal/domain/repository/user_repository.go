// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"happyshop/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned by Create when the storage-level
// uniqueness constraint on the normalized username is violated. The
// application-level existence pre-check is only a fast path; this error is
// the actual safety mechanism against concurrent signups.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository is the credential store. Every operation takes the
// normalized username; callers are expected to normalize before calling.
type UserRepository interface {
	// FindByUsername retrieves a single user record by normalized username.
	// Returns ErrUserNotFound when no record exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user record. The store assigns ID and CreatedAt
	// and writes them back into the entity. Returns ErrDuplicateUsername on
	// a uniqueness violation.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored hash for the given username.
	// The boolean reports whether a record matched and was updated.
	UpdatePasswordHash(ctx context.Context, username, newHash string) (bool, error)
}
