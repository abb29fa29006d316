package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookmarks/internal/delivery/api/middleware"
	"bookmarks/internal/delivery/api/validator"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	mockUsecase "bookmarks/internal/mocks/usecase"
	"bookmarks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerContext(method, target, body string, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextKeyUser, user)
	}

	return c, rec
}

func TestAuthHandler_Signup(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC)

	authUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Email: "a@x.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{AccessToken: "signed"}, nil).
		Once()

	c, rec := newHandlerContext(http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed"`)
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC)

	authUC.EXPECT().
		Signup(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)).
		Once()

	c, rec := newHandlerContext(http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Signin_InvalidInput(t *testing.T) {
	// The use case is never reached for bodies that fail binding or validation.
	h := NewAuthHandler(mockUsecase.NewMockAuthUsecase(t))

	c, rec := newHandlerContext(http.MethodPost, "/auth/signin", `{"email":`, nil)
	require.NoError(t, h.Signin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")

	c, _ = newHandlerContext(http.MethodPost, "/auth/signin", `{"email":"a@x.com"}`, nil)
	err := h.Signin(c)
	var validationErr *validator.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestAuthHandler_Signup_EmailTooLong(t *testing.T) {
	h := NewAuthHandler(mockUsecase.NewMockAuthUsecase(t))

	email := strings.Repeat("a", 60) + "@" + strings.Repeat(strings.Repeat("b", 60)+".", 4) + "com"
	c, _ := newHandlerContext(http.MethodPost, "/auth/signup", `{"email":"`+email+`","password":"secret1"}`, nil)

	err := h.Signup(c)

	var validationErr *validator.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Fields)
	assert.Equal(t, "email", validationErr.Fields[0].Field)
}

func TestAuthHandler_Signin_ServerErrorIsReturned(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC)

	authUC.EXPECT().
		Signin(mock.Anything, &usecase.SigninInput{Email: "a@x.com", Password: "secret1"}).
		Return(nil, errors.WithStack(domainerrors.ErrConfiguration)).
		Once()

	c, rec := newHandlerContext(http.MethodPost, "/auth/signin", `{"email":"a@x.com","password":"secret1"}`, nil)

	err := h.Signin(c)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
	assert.Zero(t, rec.Body.Len())
}

func TestUserHandler_GetMe(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockProfileUsecase(t))
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "$argon2id$secret"}

	c, rec := newHandlerContext(http.MethodGet, "/user/me", "", user)

	require.NoError(t, h.GetMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestUserHandler_EditUser(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewUserHandler(profileUC)
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}
	first := "Ada"

	profileUC.EXPECT().
		EditProfile(mock.Anything, user.ID, &usecase.EditProfileInput{FirstName: &first}).
		Return(&entity.User{ID: user.ID, Email: user.Email, FirstName: &first}, nil).
		Once()

	c, rec := newHandlerContext(http.MethodPatch, "/user", `{"firstName":"Ada"}`, user)

	require.NoError(t, h.EditUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Ada"`)
}

func TestUserHandler_RequiresUser(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockProfileUsecase(t))

	c, rec := newHandlerContext(http.MethodGet, "/user/me", "", nil)

	require.NoError(t, h.GetMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookmarkHandler_CreateBookmark(t *testing.T) {
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(bookmarkUC)
	user := &entity.User{ID: uuid.New()}
	now := time.Now().UTC()

	bookmarkUC.EXPECT().
		CreateBookmark(mock.Anything, user.ID, &usecase.CreateBookmarkInput{Title: "Go", Link: "https://go.dev"}).
		Return(&entity.Bookmark{ID: uuid.New(), UserID: user.ID, Title: "Go", Link: "https://go.dev", CreatedAt: now, UpdatedAt: now}, nil).
		Once()

	c, rec := newHandlerContext(http.MethodPost, "/bookmarks", `{"title":"Go","link":"https://go.dev"}`, user)

	require.NoError(t, h.CreateBookmark(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":"`+user.ID.String()+`"`)
}

func TestBookmarkHandler_ListBookmarks_Empty(t *testing.T) {
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(bookmarkUC)
	user := &entity.User{ID: uuid.New()}

	bookmarkUC.EXPECT().ListBookmarks(mock.Anything, user.ID).Return(nil, nil).Once()

	c, rec := newHandlerContext(http.MethodGet, "/bookmarks", "", user)

	require.NoError(t, h.ListBookmarks(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestBookmarkHandler_InvalidID(t *testing.T) {
	h := NewBookmarkHandler(mockUsecase.NewMockBookmarkUsecase(t))
	user := &entity.User{ID: uuid.New()}

	c, rec := newHandlerContext(http.MethodDelete, "/bookmarks/x", "", user)
	c.SetParamNames("id")
	c.SetParamValues("x")

	require.NoError(t, h.DeleteBookmark(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestBookmarkHandler_EditBookmark_Forbidden(t *testing.T) {
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(bookmarkUC)
	user := &entity.User{ID: uuid.New()}
	bookmarkID := uuid.New()
	title := "stolen"

	bookmarkUC.EXPECT().
		EditBookmark(mock.Anything, user.ID, bookmarkID, &usecase.EditBookmarkInput{Title: &title}).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden)).
		Once()

	c, rec := newHandlerContext(http.MethodPatch, "/bookmarks/"+bookmarkID.String(), `{"title":"stolen"}`, user)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())

	require.NoError(t, h.EditBookmark(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access to resources denied")
}

func TestBookmarkHandler_GetAndDelete(t *testing.T) {
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(bookmarkUC)
	user := &entity.User{ID: uuid.New()}
	bookmarkID := uuid.New()

	bookmarkUC.EXPECT().
		GetBookmark(mock.Anything, user.ID, bookmarkID).
		Return(nil, errors.WithStack(domainerrors.ErrBookmarkNotFound)).
		Once()
	bookmarkUC.EXPECT().
		DeleteBookmark(mock.Anything, user.ID, bookmarkID).
		Return(nil).
		Once()

	c, rec := newHandlerContext(http.MethodGet, "/bookmarks/"+bookmarkID.String(), "", user)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())
	require.NoError(t, h.GetBookmark(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newHandlerContext(http.MethodDelete, "/bookmarks/"+bookmarkID.String(), "", user)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())
	require.NoError(t, h.DeleteBookmark(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
