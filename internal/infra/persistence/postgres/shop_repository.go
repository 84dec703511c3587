package postgres

import (
	"context"
	"strings"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// shopRepository implements the domain.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop. An owner can hold only one shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopAlreadyOwned.WrapMessage("owner already has a shop")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shopRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *shopRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// List returns shops ordered by title, read from a replica when one is configured.
func (repo *shopRepository) List(ctx context.Context, filter repository.ShopFilter) ([]*entity.Shop, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("title ASC")
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var shopModels []*model.ShopModel
	if err := query.Find(&shopModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Update saves the editable fields of a shop. The owner never changes.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"title":       shop.Title,
			"description": shop.Description,
			"address":     shop.Address,
			"city":        shop.City,
			"phone":       shop.Phone,
			"email":       shop.Email,
			"image_url":   shop.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("shop still has orders or appointments")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Phone:       data.Phone,
		Email:       data.Email,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Address:     data.Address,
		City:        data.City,
		Phone:       data.Phone,
		Email:       data.Email,
		ImageURL:    data.ImageURL,
	}
}
