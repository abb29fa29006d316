package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the current state of the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// EditProfile changes email and names. An email taken by another account fails
// with ErrUserAlreadyExists from the store.
func (srv *profileService) EditProfile(ctx context.Context, userID uuid.UUID, input *usecase.EditProfileInput) (*entity.User, error) {
	changes := entity.UserChanges{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if changes.IsEmpty() {
		return srv.GetProfile(ctx, userID)
	}

	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.UpdateProfile(ctx, userID, changes)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrUserAlreadyExists):
			return nil, err
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}
		srv.log(ctx).Error("Failed to update user profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}
