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

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	txManager    repository.TransactionManager
	bookmarkRepo repository.BookmarkRepository
	logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(
	txManager repository.TransactionManager,
	bookmarkRepo repository.BookmarkRepository,
	logger *slog.Logger,
) usecase.BookmarkUsecase {
	return &bookmarkService{
		txManager:    txManager,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBookmark saves a bookmark owned by userID.
func (srv *bookmarkService) CreateBookmark(ctx context.Context, userID uuid.UUID, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		srv.log(ctx).Error("Failed to create bookmark", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create bookmark")
	}
	srv.log(ctx).Debug("Bookmark created", slog.Any("userID", userID), slog.Any("bookmarkID", bookmark.ID))

	return bookmark, nil
}

// ListBookmarks returns the bookmarks of userID, newest first.
func (srv *bookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// GetBookmark returns the bookmark only when userID owns it.
func (srv *bookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindByIDAndOwner(ctx, bookmarkID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBookmarkNotFound)
		}

		return nil, errors.Wrap(err, "failed to get bookmark")
	}

	return bookmark, nil
}

// EditBookmark applies the changes inside one transaction so the ownership
// check and the update see the same row.
func (srv *bookmarkService) EditBookmark(ctx context.Context, userID, bookmarkID uuid.UUID, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	changes := entity.BookmarkChanges{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}

	var edited *entity.Bookmark
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		current, err := srv.loadOwned(ctx, bookmarkRepo, userID, bookmarkID)
		if err != nil {
			return err
		}
		if changes.IsEmpty() {
			edited = current

			return nil
		}

		edited, err = bookmarkRepo.Update(ctx, bookmarkID, changes)
		if err != nil {
			return errors.Wrap(err, "failed to update bookmark")
		}

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to edit bookmark", userID, bookmarkID, err)

		return nil, err
	}

	return edited, nil
}

// DeleteBookmark removes the bookmark when userID owns it.
func (srv *bookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		if _, err := srv.loadOwned(ctx, bookmarkRepo, userID, bookmarkID); err != nil {
			return err
		}

		if err := bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
			return errors.Wrap(err, "failed to delete bookmark")
		}

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to delete bookmark", userID, bookmarkID, err)

		return err
	}
	srv.log(ctx).Debug("Bookmark deleted", slog.Any("userID", userID), slog.Any("bookmarkID", bookmarkID))

	return nil
}

// loadOwned distinguishes a missing bookmark (not found) from one owned by
// another user (forbidden).
func (srv *bookmarkService) loadOwned(ctx context.Context, bookmarkRepo repository.BookmarkRepository, userID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	bookmark, err := bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBookmarkNotFound)
		}

		return nil, errors.Wrap(err, "failed to find bookmark")
	}

	if !bookmark.IsOwnedBy(userID) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return bookmark, nil
}

func (srv *bookmarkService) logFailure(ctx context.Context, msg string, userID, bookmarkID uuid.UUID, err error) {
	level := slog.LevelError
	if errors.Is(err, domainerrors.ErrBookmarkNotFound) || errors.Is(err, domainerrors.ErrForbidden) {
		level = slog.LevelWarn
	}
	srv.log(ctx).Log(ctx, level, msg, slog.Any("userID", userID), slog.Any("bookmarkID", bookmarkID), slog.Any("error", err))
}
