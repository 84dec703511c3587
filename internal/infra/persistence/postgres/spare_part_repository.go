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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// sparePartRepository implements the domain.SparePartRepository interface.
type sparePartRepository struct {
	db *gorm.DB
}

// NewSparePartRepository is the constructor for sparePartRepository.
func NewSparePartRepository(db *gorm.DB) repository.SparePartRepository {
	return &sparePartRepository{db: db}
}

func (repo *sparePartRepository) Create(ctx context.Context, part *entity.SparePart) error {
	partM := fromSparePartDomain(part)

	if err := repo.db.WithContext(ctx).Create(partM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity and price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create spare part")
	}

	part.ID = partM.ID
	part.CreatedAt = partM.CreatedAt
	part.UpdatedAt = partM.UpdatedAt

	return nil
}

func (repo *sparePartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SparePart, error) {
	var partM model.SparePartModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&partM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSparePartNotFound
		}

		return nil, errors.Wrap(err, "failed to find spare part")
	}

	return toSparePartDomain(&partM), nil
}

func (repo *sparePartRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.SparePart, error) {
	return repo.Search(ctx, repository.SparePartFilter{ShopID: &shopID})
}

// Search filters parts by shop and a case-insensitive title substring.
func (repo *sparePartRepository) Search(ctx context.Context, filter repository.SparePartFilter) ([]*entity.SparePart, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("title ASC")
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var partModels []*model.SparePartModel
	if err := query.Find(&partModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list spare parts")
	}

	parts := make([]*entity.SparePart, 0, len(partModels))
	for _, partM := range partModels {
		parts = append(parts, toSparePartDomain(partM))
	}

	return parts, nil
}

// Update saves catalog fields and the inventory settings of a part.
func (repo *sparePartRepository) Update(ctx context.Context, part *entity.SparePart) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SparePartModel{}).
		Where("id = ?", part.ID).
		Updates(map[string]any{
			"title":            part.Title,
			"description":      part.Description,
			"image_url":        part.ImageURL,
			"price":            part.Price,
			"manage_inventory": part.ManageInventory,
			"quantity":         part.Quantity,
			"low_stock_limit":  part.LowStockLimit,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity and price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update spare part")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSparePartNotFound
	}

	return nil
}

func (repo *sparePartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SparePartModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete spare part")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSparePartNotFound
	}

	return nil
}

// DecreaseQuantity removes up to amount units under a row lock and returns the
// part after the change together with the amount actually removed. Parts that
// do not manage inventory are returned untouched.
func (repo *sparePartRepository) DecreaseQuantity(ctx context.Context, id uuid.UUID, amount int) (*entity.SparePart, int, error) {
	var (
		part    *entity.SparePart
		removed int
	)

	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		var partM model.SparePartModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&partM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrSparePartNotFound
			}

			return errors.WithStack(err)
		}

		part = toSparePartDomain(&partM)
		if !part.ManageInventory {
			return nil
		}

		var remaining int
		remaining, removed = entity.ClampedDecrease(part.Quantity, amount)
		if removed == 0 {
			return nil
		}

		if err := tx.Model(&model.SparePartModel{}).Where("id = ?", id).Update("quantity", remaining).Error; err != nil {
			return errors.WithStack(err)
		}
		part.Quantity = remaining

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrSparePartNotFound) {
			return nil, 0, err
		}

		return nil, 0, domainerrors.ErrInventoryAdjustmentFailed.WithCause(err)
	}

	return part, removed, nil
}

// RestoreQuantity adds amount units back to a managed part.
func (repo *sparePartRepository) RestoreQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SparePartModel{}).
		Where("id = ? AND manage_inventory", id).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return domainerrors.ErrInventoryAdjustmentFailed.WithCause(result.Error)
	}

	return nil
}

func toSparePartDomain(data *model.SparePartModel) *entity.SparePart {
	if data == nil {
		return nil
	}

	return &entity.SparePart{
		ID:              data.ID,
		ShopID:          data.ShopID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		Price:           data.Price,
		ManageInventory: data.ManageInventory,
		Quantity:        data.Quantity,
		LowStockLimit:   data.LowStockLimit,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSparePartDomain(data *entity.SparePart) *model.SparePartModel {
	if data == nil {
		return nil
	}

	return &model.SparePartModel{
		ID:              data.ID,
		ShopID:          data.ShopID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		Price:           data.Price,
		ManageInventory: data.ManageInventory,
		Quantity:        data.Quantity,
		LowStockLimit:   data.LowStockLimit,
	}
}
