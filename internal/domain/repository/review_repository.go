package repository

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists reviews. There is no uniqueness constraint on
// (item, author); Exists is the advisory gate.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Exists(ctx context.Context, itemID, authorID uuid.UUID) (bool, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error)
}
