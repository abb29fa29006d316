package postgres

import (
	"testing"
	"time"

	"bookmarks/internal/domain/entity"
	"bookmarks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserMappers_RoundTrip(t *testing.T) {
	first := "Ada"
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "$argon2id$digest",
		FirstName:    &first,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestBookmarkMappers_RoundTrip(t *testing.T) {
	description := "The Go blog"
	bookmark := &entity.Bookmark{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Go",
		Description: &description,
		Link:        "https://go.dev/blog",
	}

	assert.Equal(t, bookmark, toBookmarkDomain(fromBookmarkDomain(bookmark)))
	assert.Nil(t, toBookmarkDomain(nil))
	assert.Nil(t, fromBookmarkDomain(nil))
}

func TestModels_BeforeCreateAssignsID(t *testing.T) {
	userM := &model.UserModel{}
	assert.NoError(t, userM.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, userM.ID)
	assert.Equal(t, uuid.Version(7), userM.ID.Version())

	fixed := uuid.New()
	bookmarkM := &model.BookmarkModel{ID: fixed}
	assert.NoError(t, bookmarkM.BeforeCreate(nil))
	assert.Equal(t, fixed, bookmarkM.ID)
}
