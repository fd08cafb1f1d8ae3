// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// PasswordReset represents a single-use password-reset token.
// The token value itself is the primary lookup key. The email is a loose
// reference to the target account, not a foreign key, so the record outlives
// account deletion.
type PasswordReset struct {
	Token     string    // Cryptographically random, unguessable secret (UUIDv4).
	Email     string    // Normalized email of the account the token was issued for.
	Used      bool      // Flips to true exactly once, atomically with the password change.
	CreatedAt time.Time // Issuance time.
	ExpiresAt time.Time // Absolute expiry, a fixed window from issuance.
}

// IsExpired returns true if the token's validity window has passed.
func (r *PasswordReset) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}
