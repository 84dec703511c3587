package postgres

import (
	"context"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	row := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already issued")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrUserNotFound.WrapMessage("refresh token for unknown user")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
		}
	}

	token.ID = row.ID
	token.CreatedAt = row.CreatedAt

	return nil
}

// ConsumeRefreshToken is a single DELETE ... RETURNING, so of two concurrent
// exchanges exactly one sees the row.
func (repo *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var rows []model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token_hash = ?", tokenHash).
		Delete(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume refresh token")
	}
	if len(rows) == 0 {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return &entity.RefreshToken{
		ID:        rows[0].ID,
		UserID:    rows[0].UserID,
		TokenHash: rows[0].TokenHash,
		ExpiresAt: rows[0].ExpiresAt,
		CreatedAt: rows[0].CreatedAt,
	}, nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error

	return errors.Wrap(err, "failed to delete refresh tokens")
}
