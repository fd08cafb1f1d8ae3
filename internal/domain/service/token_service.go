package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pond/internal/domain/entity"
)

// Claims defines the identity claims carried by a session token. The user id
// travels in the registered "sub" claim; UserID is its parsed form, populated
// on verification.
type Claims struct {
	UserID  uuid.UUID `json:"-"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue produces a signed session token scoped to the given user,
	// carrying an issued-at timestamp and an absolute expiry.
	Issue(user *entity.User) (string, error)

	// Verify checks a token's signature and expiry and returns its claims.
	Verify(tokenString string) (*Claims, error)
}
