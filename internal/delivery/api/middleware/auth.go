// Package middleware contains echo middleware specific to the HTTP API.
package middleware

import (
	"strings"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	headerAuthorization = "Authorization"
	bearerScheme        = "bearer"

	// ContextKeyUser is the echo.Context key of the authenticated *entity.User.
	ContextKeyUser = "user"
)

// AuthMiddleware resolves the bearer token of a request to the current user.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer
// token of an existing user. On success the user is available through GetUser
// and deliverycontext.GetUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken, err := bearerToken(c.Request().Header.Get(headerAuthorization))
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		user, err := m.sessionUC.ResolveIdentity(ctx, rawToken)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)
		ctx = deliverycontext.WithUser(ctx, user)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", user.ID.String()))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "authorization scheme must be Bearer")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "bearer token is empty")
	}

	return token, nil
}

// GetUser returns the user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the ID of the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
