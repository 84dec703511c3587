package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"autohub/config"
	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	mockRepo "autohub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    12,
			ResetTokenTTL: 30 * time.Minute,
		},
		Marketplace: &config.MarketplaceConfig{
			DateLayout:           time.DateOnly,
			DefaultLowStockLimit: 10,
			ListLimit:            50,
		},
	}
}

// expectTx runs the transaction callback against a fresh factory mock prepared
// by setup and returns the callback's error, as the real manager does.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func ownerSession(shopID uuid.UUID) *entity.Session {
	principalID := uuid.New()
	profile := &entity.UserProfile{
		UserID:      principalID,
		DisplayName: "Owner",
		Role:        entity.RoleShopOwner,
		ShopID:      &shopID,
		Persisted:   true,
	}

	return entity.NewSession(principalID, profile)
}

func customerSession() *entity.Session {
	principalID := uuid.New()
	profile := &entity.UserProfile{
		UserID:      principalID,
		Email:       "customer@example.com",
		DisplayName: "Customer",
		Phone:       "0912345678",
		Role:        entity.RoleCustomer,
		Persisted:   true,
	}

	return entity.NewSession(principalID, profile)
}
