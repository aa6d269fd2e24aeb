// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a create or update collides with the
// storage-level uniqueness of username or email.
var ErrDuplicateUser = errors.New("username or email already taken")

// UserQuery filters and paginates the administrative user listing.
type UserQuery struct {
	Search string // Substring match on username; empty means no filter.
	Limit  int
	Offset int
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameEmail retrieves the user matching both username and email,
	// used for the signup get-or-create path.
	FindByUsernameEmail(ctx context.Context, username, email string) (*entity.User, error)

	// List returns users matching the query, ordered by username.
	List(ctx context.Context, query UserQuery) ([]*entity.User, error)

	// Create persists a new user. Uniqueness collisions surface as
	// ErrDuplicateUser regardless of which index caught them.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given username.
	Delete(ctx context.Context, username string) error
}
