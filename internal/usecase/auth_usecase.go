// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bookmarks/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the access token issued by a successful signup or signin.
type AuthOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase defines the credential flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates an account and returns a token for it. A registered email
	// fails with domainerrors.ErrUserAlreadyExists.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Signin checks the credentials and returns a fresh token. An unknown email and
	// a wrong password both fail with domainerrors.ErrCredentialsIncorrect.
	Signin(ctx context.Context, input *SigninInput) (*AuthOutput, error)
}
