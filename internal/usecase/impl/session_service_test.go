package impl

import (
	"context"
	"testing"

	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	mockRepo "autohub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSessionService_ResolveRole(t *testing.T) {
	ctx := context.Background()

	t.Run("shop owner with shop", func(t *testing.T) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		service := NewSessionService(profileRepo, mockRepo.NewMockUserRepository(t), newDiscardLogger())

		principalID, shopID := uuid.New(), uuid.New()
		profileRepo.EXPECT().FindByUserID(ctx, principalID).
			Return(&entity.UserProfile{UserID: principalID, Role: entity.RoleShopOwner, ShopID: &shopID}, nil)

		session := service.ResolveRole(ctx, principalID)

		assert.Equal(t, entity.PathShopOwnerWithShop, session.Path)
		assert.Equal(t, shopID, session.ShopID())
		assert.False(t, session.Degraded)
	})

	t.Run("shop owner onboarding", func(t *testing.T) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		service := NewSessionService(profileRepo, mockRepo.NewMockUserRepository(t), newDiscardLogger())

		principalID := uuid.New()
		profileRepo.EXPECT().FindByUserID(ctx, principalID).
			Return(&entity.UserProfile{UserID: principalID, Role: entity.RoleShopOwner}, nil)

		assert.Equal(t, entity.PathShopOwnerOnboarding, service.ResolveRole(ctx, principalID).Path)
	})

	t.Run("missing profile synthesises a customer", func(t *testing.T) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		service := NewSessionService(profileRepo, userRepo, newDiscardLogger())

		principalID := uuid.New()
		profileRepo.EXPECT().FindByUserID(ctx, principalID).Return(nil, repository.ErrProfileNotFound)
		userRepo.EXPECT().FindByID(ctx, principalID).Return(&entity.User{ID: principalID, Email: "a@b.c", Name: "Alex"}, nil)

		session := service.ResolveRole(ctx, principalID)

		assert.Equal(t, entity.PathCustomer, session.Path)
		assert.Equal(t, "Alex", session.Profile.DisplayName)
		assert.False(t, session.Profile.Persisted)
		assert.False(t, session.Degraded)
	})

	t.Run("backend error fails open to customer", func(t *testing.T) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		service := NewSessionService(profileRepo, mockRepo.NewMockUserRepository(t), newDiscardLogger())

		principalID := uuid.New()
		profileRepo.EXPECT().FindByUserID(ctx, principalID).Return(nil, errors.New("connection refused"))

		session := service.ResolveRole(ctx, principalID)

		assert.Equal(t, entity.PathCustomer, session.Path)
		assert.True(t, session.Degraded)
		assert.Equal(t, principalID, session.PrincipalID)
	})
}
