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
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	row := &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       string(auth.Provider),
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	err := repo.db.WithContext(ctx).Create(row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrUserCreationFailed.WrapMessage("credential rejected by the database")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID, auth.CreatedAt, auth.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	return repo.first(ctx, "provider = ? AND provider_user_id = ?", string(provider), providerUserID)
}

func (repo *authRepository) FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	return repo.first(ctx, "user_id = ? AND provider = ?", userID, string(provider))
}

func (repo *authRepository) UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("id = ?", authID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

func (repo *authRepository) first(ctx context.Context, query string, args ...any) (*entity.Authentication, error) {
	var row model.AuthenticationModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       entity.ProviderType(row.Provider),
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
