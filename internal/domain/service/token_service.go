package service

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenTTL is the fixed lifetime of every access token.
const AccessTokenTTL = 30 * time.Minute

// Claims is the identity asserted by a verified access token.
type Claims struct {
	UserID    uuid.UUID // The 'sub' claim.
	Email     string    // The email bound at issuance time.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AccessToken is a signed bearer token together with its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies self-contained, time-bounded access tokens.
// Tokens are not persisted: validity is decided by signature and expiry alone.
type TokenService interface {
	// IssueAccessToken signs {sub: userID, email} valid for AccessTokenTTL.
	// Failures are configuration errors, never client errors.
	IssueAccessToken(userID uuid.UUID, email string) (*AccessToken, error)

	// ValidateAccessToken checks signature, algorithm and expiry and returns the claims.
	// Every rejection wraps domainerrors.ErrUnauthorized.
	ValidateAccessToken(token string) (*Claims, error)
}
