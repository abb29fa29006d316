package impl

import (
	"io"
	"log/slog"
	"time"

	"bookmarks/internal/domain/entity"
	"bookmarks/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$argon2id$hashed",
	}
}

func newTestToken() *service.AccessToken {
	return &service.AccessToken{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(service.AccessTokenTTL),
	}
}

func strPtr(s string) *string {
	return &s
}
