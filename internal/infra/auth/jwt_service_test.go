package auth

import (
	"strings"
	"testing"
	"time"

	"bookmarks/config"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "   "

	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 500_000_000, time.UTC)}
	svc := newTestJWTService(t, clock)
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, "a@x.io")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), token.ExpiresAt.UTC())

	claims, err := svc.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, service.AccessTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		offset  time.Duration
		wantErr bool
	}{
		{name: "at issuance", offset: 0},
		{name: "one minute later", offset: time.Minute},
		{name: "one second before expiry", offset: 30*time.Minute - time.Second},
		{name: "exactly at expiry", offset: 30 * time.Minute, wantErr: true},
		{name: "after expiry", offset: 31 * time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{current: issuedAt}
			svc := newTestJWTService(t, clock)

			token, err := svc.IssueAccessToken(uuid.New(), "a@x.io")
			require.NoError(t, err)

			clock.current = issuedAt.Add(tt.offset)
			claims, err := svc.ValidateAccessToken(token.Token)
			if tt.wantErr {
				assert.Nil(t, claims)
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestJWTService(t, clock)

	valid, err := svc.IssueAccessToken(uuid.New(), "a@x.io")
	require.NoError(t, err)

	otherSvc, err := newJWTService("a_completely_different_secret", clock.Now)
	require.NoError(t, err)
	foreign, err := otherSvc.IssueAccessToken(uuid.New(), "a@x.io")
	require.NoError(t, err)

	parts := strings.Split(valid.Token, ".")
	require.Len(t, parts, 3)
	tamperedPayload, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "evil@x.io",
		"iat":   clock.current.Unix(),
		"exp":   clock.current.Add(time.Hour).Unix(),
	}).SigningString()
	require.NoError(t, err)
	tampered := tamperedPayload + "." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "a@x.io",
		"exp":   clock.current.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "42",
		"email": "a@x.io",
		"exp":   clock.current.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "a@x.io",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":            "",
		"not a jwt":        "clearly-not-a-jwt-token-format",
		"foreign secret":   foreign.Token,
		"tampered payload": tampered,
		"alg none":         noneToken,
		"non uuid subject": badSubject,
		"missing exp":      noExpiry,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}
