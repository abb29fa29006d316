package impl

import (
	"context"
	"testing"

	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	mockRepo "bookmarks/internal/mocks/repository"
	"bookmarks/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	user := newTestUser("a@x.io")

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewProfileService(userRepo, newDiscardLogger())

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	found, err := srv.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	user := newTestUser("a@x.io")

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewProfileService(userRepo, newDiscardLogger())

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

	found, err := srv.GetProfile(ctx, user.ID)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_EditProfile(t *testing.T) {
	ctx := context.Background()
	user := newTestUser("a@x.io")
	input := &usecase.EditProfileInput{FirstName: strPtr("Ada"), Email: strPtr("ada@x.io")}

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewProfileService(userRepo, newDiscardLogger())

	updated := *user
	updated.Email = "ada@x.io"
	updated.FirstName = input.FirstName
	userRepo.EXPECT().
		UpdateProfile(ctx, user.ID, entity.UserChanges{Email: input.Email, FirstName: input.FirstName}).
		Return(&updated, nil)

	result, err := srv.EditProfile(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.io", result.Email)
	assert.Equal(t, user.PasswordHash, result.PasswordHash)
}

func TestProfileService_EditProfile_EmailTaken(t *testing.T) {
	ctx := context.Background()
	user := newTestUser("a@x.io")
	input := &usecase.EditProfileInput{Email: strPtr("taken@x.io")}

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewProfileService(userRepo, newDiscardLogger())

	userRepo.EXPECT().
		UpdateProfile(ctx, user.ID, entity.UserChanges{Email: input.Email}).
		Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

	result, err := srv.EditProfile(ctx, user.ID, input)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProfileService_EditProfile_NoChanges(t *testing.T) {
	ctx := context.Background()
	user := newTestUser("a@x.io")

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewProfileService(userRepo, newDiscardLogger())

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	result, err := srv.EditProfile(ctx, user.ID, &usecase.EditProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, user, result)
}
