package usecase

import (
	"context"

	"autohub/internal/domain/entity"
)

// UpdateProfileInput holds the editable profile fields. Nil leaves a field unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	Email       *string
	Phone       *string
	ImageURL    *string
}

// ProfileUsecase manages the marketplace profile of the session principal.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, session *entity.Session) (*entity.UserProfile, error)
	SaveProfile(ctx context.Context, session *entity.Session, input *UpdateProfileInput) (*entity.UserProfile, error)
	BecomeShopOwner(ctx context.Context, session *entity.Session) (*entity.UserProfile, error)
	UpdatePushToken(ctx context.Context, session *entity.Session, token string) error
}
