package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/domain/repository"
	"pond/internal/infra/persistence/model"
)

// passwordResetRepository implements the repository.PasswordResetRepository
// interface using GORM.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a freshly issued reset token.
func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindByToken retrieves a token record regardless of its state.
func (repo *passwordResetRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel

	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&resetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token")
	}

	return toPasswordResetDomain(&resetM), nil
}

// Claim flips the used flag with a single conditional UPDATE. The validity
// check and the write are one statement, so two requests racing on the same
// token serialize in the database and exactly one observes RowsAffected == 1.
// An expired token never matches the condition and is left untouched.
func (repo *passwordResetRepository) Claim(ctx context.Context, token, email string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("token = ? AND email = ? AND used = ? AND expires_at > ?", token, email, false, time.Now()).
		Update("used", true)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim password reset token")
	}

	return result.RowsAffected == 1, nil
}

// --- Mapper Functions ---

// toPasswordResetDomain converts a GORM PasswordResetModel to a domain entity.
func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		Token:     data.Token,
		Email:     data.Email,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromPasswordResetDomain converts a domain entity to a GORM PasswordResetModel.
func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		Token:     data.Token,
		Email:     data.Email,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
