package auth

import (
	"bookmarks/config"
	"bookmarks/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HasherParams defines the dependencies of NewPasswordHasher.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewPasswordHasher selects the hashing algorithm named by auth.hasher.
func NewPasswordHasher(params HasherParams) (service.PasswordHasher, error) {
	authCfg := params.Config.Auth
	if authCfg == nil {
		return NewArgon2Hasher(DefaultArgon2Params), nil
	}

	switch authCfg.Hasher {
	case "", config.HasherArgon2id:
		return NewArgon2Hasher(Argon2Params{
			Time:       authCfg.Argon2.Time,
			MemoryKiB:  authCfg.Argon2.MemoryKiB,
			Threads:    authCfg.Argon2.Threads,
			KeyLength:  authCfg.Argon2.KeyLength,
			SaltLength: authCfg.Argon2.SaltLength,
		}), nil
	case config.HasherBcrypt:
		return NewBcryptHasher(authCfg.BcryptCost), nil
	default:
		return nil, errors.Errorf("unsupported password hasher %q", authCfg.Hasher)
	}
}
