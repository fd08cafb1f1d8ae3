package repository

import (
	"context"

	"pond/internal/domain/entity"
	"pond/internal/errors"
)

// ErrResetTokenNotFound is returned when no reset token matches the lookup key.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// PasswordResetRepository manages persistence of password-reset tokens.
type PasswordResetRepository interface {
	// Create persists a freshly issued token.
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindByToken retrieves a token record regardless of its state. Used to
	// classify a failed claim; never used to decide one.
	FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error)

	// Claim atomically marks the token used, but only if it matches the
	// email, is still unused, and has not expired. The check and the flip are
	// a single conditional write so that concurrent claims of the same token
	// yield exactly one success. Returns (true, nil) when this call won the
	// claim and (false, nil) when the condition did not hold.
	Claim(ctx context.Context, token, email string) (bool, error)
}
