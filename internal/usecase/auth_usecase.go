// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pond/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// AnonymousID optionally carries the visitor's pre-registration identifier so
// their existing fish can be merged into the new account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	AnonymousID string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email       string
	Password    string
	AnonymousID string
}

// ForgotPasswordInput requests a password-reset email. BaseURL optionally
// overrides the configured site origin used to build the reset link.
type ForgotPasswordInput struct {
	Email   string
	BaseURL string
}

// ResetPasswordInput consumes a reset token and sets a new password.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// SessionOutput returns the session token and the account it is scoped to.
type SessionOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account and returns a session for it.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login verifies credentials and returns a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// ForgotPassword issues a reset token and dispatches the reset email.
	// It reports success whether or not the account exists.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword claims a reset token and overwrites the password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
