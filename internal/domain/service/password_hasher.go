// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a digest from a plaintext password. The digest embeds a
	// per-call random salt and the work factor.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest. It fails closed: a
	// malformed digest, an internal error, or a mismatch all yield false.
	Check(password, hash string) bool
}
