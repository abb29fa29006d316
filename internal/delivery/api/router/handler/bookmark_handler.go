package handler

import (
	"net/http"
	"time"

	"bookmarks/internal/delivery/api/middleware"
	"bookmarks/internal/delivery/api/response"
	"bookmarks/internal/domain/entity"
	"bookmarks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateBookmarkRequest is the body of POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Link        string  `json:"link" validate:"required,http_url"`
}

// EditBookmarkRequest is the body of PATCH /bookmarks/:id. Absent fields are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,http_url"`
}

// BookmarkResponse is the public view of a bookmark.
type BookmarkResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBookmarkResponse(b *entity.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BookmarkHandler holds dependencies for the bookmark endpoints.
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(bookmarkUC usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{bookmarkUC: bookmarkUC}
}

// CreateBookmark handles POST /bookmarks.
func (h *BookmarkHandler) CreateBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	var req CreateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.bookmarkUC.CreateBookmark(c.Request().Context(), userID, &usecase.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark))
}

// ListBookmarks handles GET /bookmarks.
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	bookmarks, err := h.bookmarkUC.ListBookmarks(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		result = append(result, toBookmarkResponse(b))
	}

	return response.Success(c, http.StatusOK, result)
}

// GetBookmark handles GET /bookmarks/:id.
func (h *BookmarkHandler) GetBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	bookmark, err := h.bookmarkUC.GetBookmark(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// EditBookmark handles PATCH /bookmarks/:id.
func (h *BookmarkHandler) EditBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	var req EditBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.bookmarkUC.EditBookmark(c.Request().Context(), userID, bookmarkID, &usecase.EditBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// DeleteBookmark handles DELETE /bookmarks/:id.
func (h *BookmarkHandler) DeleteBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	if err := h.bookmarkUC.DeleteBookmark(c.Request().Context(), userID, bookmarkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c, http.StatusNoContent)
}
