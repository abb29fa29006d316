package repository

import (
	"context"
	"errors"

	"bookmarks/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookmarkNotFound is returned when a bookmark is not found.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines the persistence operations for bookmarks.
type BookmarkRepository interface {
	// Create persists a new bookmark and fills in the generated ID and timestamps.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByID retrieves a bookmark regardless of owner. Callers check ownership.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)

	// FindByIDAndOwner retrieves a bookmark only if userID owns it.
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Bookmark, error)

	// ListByOwner returns all bookmarks of userID, newest first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)

	// Update writes the given changes to the bookmark with the given ID.
	Update(ctx context.Context, id uuid.UUID, changes entity.BookmarkChanges) (*entity.Bookmark, error)

	// Delete removes the bookmark with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
