package auth

import (
	"strconv"
	"unicode"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordBytes is the input limit of bcrypt itself.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy. Only the length rule
// is on by default.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	runes := []rune(password)

	if h.policy.MinLength > 0 && len(runes) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least " + strconv.Itoa(h.policy.MinLength) + " characters")
	}
	if h.policy.MaxLength > 0 && len(runes) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at most " + strconv.Itoa(h.policy.MaxLength) + " characters")
	}
	if len(password) > bcryptMaxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var upper, lower, digit, special bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !upper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter")
	case h.policy.RequireLowercase && !lower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a lowercase letter")
	case h.policy.RequireNumbers && !digit:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a number")
	case h.policy.RequireSpecial && !special:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a special character")
	}

	return nil
}
