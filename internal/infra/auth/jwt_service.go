package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bookmarks/config"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/service"
)

// accessClaims is the JWT payload: sub, email, iat and exp.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte           // Secret key for signing access tokens.
	accessTTL    time.Duration    // Time-to-live for access tokens.
	now          func() time.Time // Clock used for issuance and expiry checks.
}

// NewJWTService is the constructor for jwtService.
// It fails when no signing secret is configured.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Access, time.Now)
}

func newJWTService(secret string, now func() time.Time) (*jwtService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.WithStack(domainerrors.ErrConfiguration.WithDetails("jwt access secret must be provided"))
	}

	return &jwtService{
		accessSecret: []byte(secret),
		accessTTL:    service.AccessTokenTTL,
		now:          now,
	}, nil
}

// IssueAccessToken signs {sub, email} with HS256. The issuance time is truncated
// to whole seconds so exp is exactly iat plus the TTL.
func (s *jwtService) IssueAccessToken(userID uuid.UUID, email string) (*service.AccessToken, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrConfiguration, "failed to sign access token: %v", err)
	}

	return &service.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateAccessToken verifies signature, algorithm and expiry and returns the claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "empty token")
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUnauthorized, "failed to parse token: %v", err)
	}
	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token is not valid")
	}

	// exp is exclusive.
	if !s.now().Before(claims.ExpiresAt.Time) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token has expired")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid subject claim")
	}
	if claims.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "missing email claim")
	}

	result := &service.Claims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.accessSecret, nil
}
