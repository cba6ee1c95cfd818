// Package service defines interfaces for domain services implemented in infra.
package service

// PasswordHasher abstracts password hashing so the usecase layer never
// touches bcrypt directly.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
