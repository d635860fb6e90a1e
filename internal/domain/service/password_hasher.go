// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for one-way password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// derived from the configured work factor; failure of the underlying
	// primitive surfaces as an error.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A mismatch returns
	// false, never an error.
	Check(password, hash string) bool
}
