// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.Policy,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup hashes the password, creates the account and issues a token for it.
// The store's unique index decides duplicates, so two concurrent signups for
// one email yield exactly one account.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting signup", slog.String("email", input.Email))

	if err := srv.policy.Validate(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, domainerrors.ErrPasswordStrength) {
		srv.log(ctx).Warn("Password rejected by hasher during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrPasswordHashFailed, "failed to hash password: %v", err)
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create user during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	output, err := srv.issue(newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User signed up", slog.Any("userID", newUser.ID))

	return output, nil
}

// Signin verifies the credentials and issues a fresh token.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Signin failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, errors.WithStack(domainerrors.ErrCredentialsIncorrect)
		}
		srv.log(ctx).Error("Failed to load user during signin", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during signin")
	}

	// Hash comparison is CPU-bound and needs no store access.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Signin failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.WithStack(domainerrors.ErrCredentialsIncorrect)
	}

	output, err := srv.issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during signin", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User signed in", slog.Any("userID", user.ID))

	return output, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConfiguration) {
			return nil, err
		}

		return nil, errors.Wrapf(domainerrors.ErrConfiguration, "failed to issue access token: %v", err)
	}

	return &usecase.AuthOutput{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        user,
	}, nil
}
