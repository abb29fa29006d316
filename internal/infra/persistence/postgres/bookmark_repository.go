package postgres

import (
	"context"

	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the repository.BookmarkRepository interface.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{
		db: db,
	}
}

// Create persists a new bookmark for its owner.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// FindByID retrieves a bookmark by its unique ID.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// FindByIDAndOwner retrieves a bookmark only when it belongs to userID.
func (repo *bookmarkRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bookmark by owner")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// ListByOwner retrieves all bookmarks of a user, newest first.
func (repo *bookmarkRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	var bookmarkModels []*model.BookmarkModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&bookmarkModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bookmarks by owner")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkModels))
	for _, bookmarkM := range bookmarkModels {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, nil
}

// Update writes only the requested columns and returns the stored bookmark.
func (repo *bookmarkRepository) Update(ctx context.Context, id uuid.UUID, changes entity.BookmarkChanges) (*entity.Bookmark, error) {
	updates := make(map[string]any, 3)
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Link != nil {
		updates["link"] = *changes.Link
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.BookmarkModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bookmark")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrBookmarkNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a bookmark by its ID.
func (repo *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookmarkModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel for persistence.
func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
