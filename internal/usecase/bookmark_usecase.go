package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"

	"github.com/google/uuid"
)

// BookmarkUsecase defines the owner-scoped bookmark operations.
type BookmarkUsecase interface {
	CreateBookmark(ctx context.Context, userID uuid.UUID, input *CreateBookmarkInput) (*entity.Bookmark, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)
	// GetBookmark reports a bookmark owned by someone else as not found.
	GetBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) (*entity.Bookmark, error)
	// EditBookmark fails with domainerrors.ErrForbidden when userID is not the owner.
	EditBookmark(ctx context.Context, userID, bookmarkID uuid.UUID, input *EditBookmarkInput) (*entity.Bookmark, error)
	// DeleteBookmark fails with domainerrors.ErrForbidden when userID is not the owner.
	DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error
}

// --- Input DTOs ---

// CreateBookmarkInput defines the data required to save a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Description *string
	Link        string
}

// EditBookmarkInput lists the bookmark fields to change. Nil fields are left as they are.
type EditBookmarkInput struct {
	Title       *string
	Description *string
	Link        *string
}
