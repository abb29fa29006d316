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

// EditUserRequest is the body of PATCH /user. Absent fields are left unchanged.
type EditUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

// UserResponse is the public view of a user. The password hash never leaves the service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserHandler holds dependencies for the profile endpoints.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{profileUC: profileUC}
}

// GetMe handles GET /user/me. It returns the user resolved by the auth middleware.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// EditUser handles PATCH /user.
func (h *UserHandler) EditUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
	}

	var req EditUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.EditProfile(c.Request().Context(), userID, &usecase.EditProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
