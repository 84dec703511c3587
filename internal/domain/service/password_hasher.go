// Package service declares the capabilities the use cases need from the
// outside world: tokens, hashing, push delivery, storage, events and metrics.
package service

// PasswordHasher stores and checks account passwords.
type PasswordHasher interface {
	// Hash enforces the password policy before hashing.
	Hash(password string) (string, error)
	Check(password, hash string) bool
	ValidatePasswordStrength(password string) error
}
