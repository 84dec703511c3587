package postgres

import (
	"context"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reviewRepository implements the domain.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:         review.ID,
		AuthorID:   review.AuthorID,
		AuthorName: review.AuthorName,
		ShopID:     review.ShopID,
		ItemID:     review.ItemID,
		ItemType:   string(review.ItemType),
		Rating:     review.Rating,
		Comment:    review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Exists reports whether author already reviewed the item.
func (repo *reviewRepository) Exists(ctx context.Context, itemID, authorID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ReviewModel{}).
		Where("item_id = ? AND author_id = ?", itemID, authorID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check review")
	}

	return count > 0, nil
}

func (repo *reviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	return repo.list(ctx, "shop_id = ?", shopID)
}

func (repo *reviewRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error) {
	return repo.list(ctx, "item_id = ?", itemID)
}

func (repo *reviewRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		itemType, _ := entity.ParseReviewItemType(reviewM.ItemType)
		reviews = append(reviews, &entity.Review{
			ID:         reviewM.ID,
			AuthorID:   reviewM.AuthorID,
			AuthorName: reviewM.AuthorName,
			ShopID:     reviewM.ShopID,
			ItemID:     reviewM.ItemID,
			ItemType:   itemType,
			Rating:     reviewM.Rating,
			Comment:    reviewM.Comment,
			CreatedAt:  reviewM.CreatedAt,
		})
	}

	return reviews, nil
}
