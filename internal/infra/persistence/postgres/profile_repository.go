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

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID loads the stored profile of a principal.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return toUserProfileDomain(&profileM), nil
}

// Save upserts the profile keyed by user id. The push token is owned by
// UpdatePushToken and is not overwritten here.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromUserProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "display_name", "phone", "role", "shop_id", "image_url", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	profile.Persisted = true

	return nil
}

// UpdatePushToken stores the device registration token of a principal.
func (repo *profileRepository) UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("push_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ClearPushToken removes a token that the push provider reported as invalid.
func (repo *profileRepository) ClearPushToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("push_token = ?", token).
		Update("push_token", "").Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear push token")
	}

	return nil
}

// toUserProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:      data.UserID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		Phone:       data.Phone,
		Role:        entity.ParseRole(data.Role),
		ShopID:      data.ShopID,
		ImageURL:    data.ImageURL,
		PushToken:   data.PushToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Persisted:   true,
	}
}

// fromUserProfileDomain converts a domain UserProfile entity to a GORM UserProfileModel.
func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:      data.UserID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		Phone:       data.Phone,
		Role:        data.Role.String(),
		ShopID:      data.ShopID,
		ImageURL:    data.ImageURL,
		PushToken:   data.PushToken,
		CreatedAt:   data.CreatedAt,
	}
}
