package usecase

import (
	"context"

	"autohub/internal/domain/entity"
)

// ActivityUsecase merges orders and appointments into one feed, newest first.
type ActivityUsecase interface {
	CustomerActivity(ctx context.Context, session *entity.Session, limit int) ([]entity.ActivityItem, error)
	ShopActivity(ctx context.Context, session *entity.Session, limit int) ([]entity.ActivityItem, error)
}
