package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkModel mirrors the 'bookmarks' table. UserID references users.id (UUID).
type BookmarkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_bookmarks_user_id_created_at,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Link        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index:idx_bookmarks_user_id_created_at,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *BookmarkModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}

// All returns every model managed by the service, in migration order.
func All() []any {
	return []any{&UserModel{}, &BookmarkModel{}}
}
