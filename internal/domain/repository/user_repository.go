// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// Domain-specific errors for user persistence. This allows the application
// layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no record matches the query.
	// It is distinct from an empty result set of a multi-record query.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when the store's unique index on
	// username rejects an insert or update.
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrDuplicateEmail is returned when the store's unique index on
	// email rejects an insert or update.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// SearchableAttributes is the default attribute set for free-text search.
var SearchableAttributes = []string{"firstname", "lastname", "username", "email"}

// UserRepository defines the standard operations for user persistence.
// Filters are a closed set of typed queries (by ID, username, email) rather
// than free-form documents, keeping the store contract explicit.
type UserRepository interface {
	// FindByID retrieves a single user by their store-assigned ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Insert persists a new user and returns it with the assigned ID.
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update applies a partial patch to the user with the given ID and
	// returns the updated record.
	Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error)

	// DeleteByUsername removes the user with the given username and
	// returns the deleted record.
	DeleteByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll returns every stored user. The result is unbounded; callers
	// accept this for the scale the system targets.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Search returns every user where any of the given attributes matches
	// the case-insensitive regular expression pattern.
	Search(ctx context.Context, pattern string, attributes []string) ([]*entity.User, error)
}
