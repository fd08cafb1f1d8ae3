// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pond/config"
	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
)

// ResetTokenManager owns the password-reset token lifecycle: issuance with a
// fixed validity window, and single-use claiming. The atomicity of a claim
// lives in the store's conditional write; this type only adds policy and
// failure classification.
type ResetTokenManager struct {
	resetRepo repository.PasswordResetRepository
	ttl       time.Duration
}

// NewResetTokenManager is the constructor for ResetTokenManager.
func NewResetTokenManager(resetRepo repository.PasswordResetRepository, cfg *config.Config) *ResetTokenManager {
	return &ResetTokenManager{
		resetRepo: resetRepo,
		ttl:       cfg.Auth.ResetTokenTTL,
	}
}

// Issue creates and stores a new single-use token for the given email. It is
// called whether or not the email belongs to a known account, so issuance
// itself cannot become an account-enumeration oracle.
func (m *ResetTokenManager) Issue(ctx context.Context, email string) (*entity.PasswordReset, error) {
	now := time.Now()
	reset := &entity.PasswordReset{
		Token:     uuid.NewString(),
		Email:     email,
		Used:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.resetRepo.Create(ctx, reset); err != nil {
		return nil, errors.Wrap(err, "failed to store reset token")
	}

	return reset, nil
}

// Claim atomically validates and consumes a token against the manager's own
// repository. See ClaimWith.
func (m *ResetTokenManager) Claim(ctx context.Context, token, email string) error {
	return m.ClaimWith(ctx, m.resetRepo, token, email)
}

// ClaimWith atomically validates and consumes a token using the supplied
// repository, which may be bound to an enclosing transaction so the claim
// commits or rolls back together with the password overwrite.
//
// On failure the token row is read once, purely to classify the outcome for
// logs and tests; the read never influences the claim decision.
func (m *ResetTokenManager) ClaimWith(ctx context.Context, resetRepo repository.PasswordResetRepository, token, email string) error {
	claimed, err := resetRepo.Claim(ctx, token, email)
	if err != nil {
		return errors.Wrap(err, "failed to claim reset token")
	}
	if claimed {
		return nil
	}

	reset, err := resetRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("unknown reset token")
		}

		return errors.Wrap(err, "failed to classify reset token claim failure")
	}

	switch {
	case reset.Email != email:
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token email mismatch")
	case reset.Used:
		return domainerrors.ErrResetTokenUsed.WrapMessage("reset token already consumed")
	case reset.IsExpired():
		return domainerrors.ErrResetTokenExpired.WrapMessage("reset token expired")
	default:
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token claim rejected")
	}
}
