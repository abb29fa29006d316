package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"bookmarks/config"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/service"

	"github.com/pkg/errors"
)

// passwordPolicy checks plaintext passwords against the configured strength rules.
type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the policy from passwordStrength. Without that section
// any non-empty password is accepted.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := config.PasswordStrengthConfig{MinLength: 1}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MinLength < 1 {
		policy.MinLength = 1
	}

	return &passwordPolicy{cfg: policy}
}

// Validate returns a wrapped ErrPasswordStrength naming the first rule the password breaks.
func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.cfg.MinLength {
		return p.reject(fmt.Sprintf("password must be at least %d characters long", p.cfg.MinLength))
	}
	if p.cfg.MaxLength > 0 && length > p.cfg.MaxLength {
		return p.reject(fmt.Sprintf("password must be at most %d characters long", p.cfg.MaxLength))
	}
	if p.cfg.RequireUppercase && !p.hasUppercase(password) {
		return p.reject("password must contain at least one uppercase letter")
	}
	if p.cfg.RequireLowercase && !p.hasLowercase(password) {
		return p.reject("password must contain at least one lowercase letter")
	}
	if p.cfg.RequireNumbers && !p.hasNumbers(password) {
		return p.reject("password must contain at least one number")
	}
	if p.cfg.RequireSpecial && !p.hasSpecialChars(password) {
		return p.reject("password must contain at least one special character")
	}

	return nil
}

func (p *passwordPolicy) reject(details string) error {
	return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(details))
}

func (p *passwordPolicy) hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func (p *passwordPolicy) hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func (p *passwordPolicy) hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func (p *passwordPolicy) hasSpecialChars(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}

	return false
}
