// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"artmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific persistence errors. The application layer branches on these
// without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no account matches a lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUniquenessConflict is the storage layer's rejection of an insert due
	// to a duplicate username or email. The unique constraint, not the
	// application pre-check, is the authority for uniqueness.
	ErrUniquenessConflict = errors.New("username or email already exists")
)

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves an account matching either value.
	// Used as the registration fast-path uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new account. Returns ErrUniquenessConflict when the
	// unique constraint rejects the insert, including the race where another
	// request inserted the same username or email after the pre-check.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the mutable profile fields of an existing account.
	Update(ctx context.Context, user *entity.User) error
}
