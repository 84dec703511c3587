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
	"gorm.io/plugin/dbresolver"
)

// serviceRepository implements the domain.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) Create(ctx context.Context, service *entity.ShopService) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopService, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopService, error) {
	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("shop_id = ?", shopID).
		Order("name ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	services := make([]*entity.ShopService, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

func (repo *serviceRepository) Update(ctx context.Context, service *entity.ShopService) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"name":        service.Name,
			"description": service.Description,
			"price":       service.Price,
			"rating":      service.Rating,
			"image_url":   service.ImageURL,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func toServiceDomain(data *model.ServiceModel) *entity.ShopService {
	if data == nil {
		return nil
	}

	return &entity.ShopService{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Rating:      data.Rating,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.ShopService) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Rating:      data.Rating,
		ImageURL:    data.ImageURL,
	}
}
