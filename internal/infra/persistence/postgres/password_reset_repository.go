package postgres

import (
	"context"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := &model.PasswordResetModel{
		ID:        reset.ID,
		UserID:    reset.UserID,
		TokenHash: reset.TokenHash,
		ExpiresAt: reset.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPasswordResetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.PasswordReset{
		ID:        resetM.ID,
		UserID:    resetM.UserID,
		TokenHash: resetM.TokenHash,
		ExpiresAt: resetM.ExpiresAt,
		UsedAt:    resetM.UsedAt,
		CreatedAt: resetM.CreatedAt,
	}, nil
}

// MarkUsed stamps the reset as redeemed. A reset that was already used is reported as not found.
func (repo *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password reset as used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPasswordResetNotFound
	}

	return nil
}
