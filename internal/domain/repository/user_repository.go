// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookmarks/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Email uniqueness is enforced by the
// store itself: Create and Update report a duplicate with
// domainerrors.ErrUserAlreadyExists rather than relying on a prior lookup.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes the given profile changes. It never touches the password hash.
	UpdateProfile(ctx context.Context, id uuid.UUID, changes entity.UserChanges) (*entity.User, error)
}
