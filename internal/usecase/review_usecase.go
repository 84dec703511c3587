package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput rates a received order or a completed appointment.
type SubmitReviewInput struct {
	ShopID   uuid.UUID
	ItemID   uuid.UUID
	ItemType string
	Rating   float64
	Comment  string
}

// RatingOutput is an average over a set of reviews.
type RatingOutput struct {
	Average float64
	Count   int
}

// ReviewUsecase accepts and aggregates reviews.
type ReviewUsecase interface {
	Submit(ctx context.Context, session *entity.Session, input *SubmitReviewInput) (*entity.Review, error)
	ReviewExists(ctx context.Context, session *entity.Session, itemID uuid.UUID) (bool, error)
	ShopRating(ctx context.Context, shopID uuid.UUID) (*RatingOutput, error)
	ItemRating(ctx context.Context, itemID uuid.UUID) (*RatingOutput, error)
	ListShopReviews(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error)
}
