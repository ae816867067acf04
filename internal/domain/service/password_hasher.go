// Package service declares the infrastructure capabilities the usecases
// call out to: hashing, tokens, events, images, payments, QR codes and reports.
package service

// PasswordHasher hashes account passwords and enforces the password policy
// applied at registration.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength with the violated rule.
	ValidatePasswordStrength(password string) error
}
