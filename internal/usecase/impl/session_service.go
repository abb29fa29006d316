package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	userRepo repository.UserRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveIdentity validates the token and reloads its subject, so a deleted
// account loses access even while its token is unexpired.
func (srv *sessionService) ResolveIdentity(ctx context.Context, rawToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateAccessToken(rawToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return nil, err
		}

		return nil, errors.Wrapf(domainerrors.ErrUnauthorized, "invalid access token: %v", err)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Access token subject no longer exists", slog.Any("userID", claims.UserID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject not found")
		}
		srv.log(ctx).Error("Failed to load token subject", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}
