package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved link that belongs to exactly one user.
type Bookmark struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owner. Every query on bookmarks is filtered by it.
	Title       string
	Description *string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID owns the bookmark.
func (b *Bookmark) IsOwnedBy(userID uuid.UUID) bool {
	return b != nil && b.UserID == userID
}

// BookmarkChanges lists the bookmark fields an edit may touch. A nil field is left unchanged.
type BookmarkChanges struct {
	Title       *string
	Description *string
	Link        *string
}

// IsEmpty reports whether the edit would change nothing.
func (c BookmarkChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Link == nil
}

// Apply copies the requested changes onto b.
func (c BookmarkChanges) Apply(b *Bookmark) {
	if c.Title != nil {
		b.Title = *c.Title
	}
	if c.Description != nil {
		b.Description = c.Description
	}
	if c.Link != nil {
		b.Link = *c.Link
	}
}
