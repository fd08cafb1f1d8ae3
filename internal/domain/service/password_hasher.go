// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a
// single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted, self-describing encoded hash from a plaintext
	// password. Two calls with the same password produce different encodings.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the encoded hash.
	// A wrong password or a malformed encoding returns false, never an error.
	Verify(password, encodedHash string) bool
}
