package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	EditProfile(ctx context.Context, userID uuid.UUID, input *EditProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// EditProfileInput lists the profile fields to change. Nil fields are left as they are.
type EditProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}
