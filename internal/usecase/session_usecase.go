package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"
)

// SessionUsecase turns a bearer token into the user it was issued to.
type SessionUsecase interface {
	// ResolveIdentity validates rawToken and reloads the current user.
	// Every failure wraps domainerrors.ErrUnauthorized.
	ResolveIdentity(ctx context.Context, rawToken string) (*entity.User, error)
}
