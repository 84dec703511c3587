package postgres

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("autohub"),
		tcpostgres.WithUsername("autohub"),
		tcpostgres.WithPassword("autohub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.Up(ctx, sqlDB, slog.New(slog.DiscardHandler)))

	return db
}

func seedShop(t *testing.T, db *gorm.DB) (*entity.User, *entity.Shop) {
	t.Helper()
	ctx := context.Background()

	owner := &entity.User{Email: uuid.NewString() + "@example.com", Name: "Owner"}
	require.NoError(t, NewUserRepository(db).Create(ctx, owner))

	shop := &entity.Shop{OwnerID: owner.ID, Title: "Torque Garage", City: "Colombo"}
	require.NoError(t, NewShopRepository(db).Create(ctx, shop))

	return owner, shop
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	t.Run("concurrent decreases never oversell", func(t *testing.T) {
		_, shop := seedShop(t, db)
		parts := NewSparePartRepository(db)

		part := &entity.SparePart{
			ShopID:          shop.ID,
			Title:           "Brake pad",
			Price:           1200,
			ManageInventory: true,
			Quantity:        5,
			LowStockLimit:   2,
		}
		require.NoError(t, parts.Create(ctx, part))

		const workers = 10
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			removed int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
					_, n, err := f.NewSparePartRepository().DecreaseQuantity(ctx, part.ID, 1)
					if err != nil {
						return err
					}
					mu.Lock()
					removed += n
					mu.Unlock()

					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, removed)

		stored, err := parts.FindByID(ctx, part.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Quantity)
		assert.True(t, stored.IsOutOfStock())

		require.NoError(t, parts.RestoreQuantity(ctx, part.ID, 3))
		stored, err = parts.FindByID(ctx, part.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Quantity)
	})

	t.Run("decrease on unmanaged part is a no-op", func(t *testing.T) {
		_, shop := seedShop(t, db)
		parts := NewSparePartRepository(db)

		part := &entity.SparePart{ShopID: shop.ID, Title: "Wiper", Price: 300}
		require.NoError(t, parts.Create(ctx, part))

		got, n, err := parts.DecreaseQuantity(ctx, part.ID, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, got.Quantity)
	})

	t.Run("order round trip keeps item snapshot", func(t *testing.T) {
		_, shop := seedShop(t, db)
		customer := &entity.User{Email: uuid.NewString() + "@example.com", Name: "Customer"}
		require.NoError(t, NewUserRepository(db).Create(ctx, customer))

		orders := NewOrderRepository(db)
		order := &entity.Order{
			ShopID:    shop.ID,
			Customer:  entity.CustomerInfo{ID: &customer.ID, Name: "Customer"},
			Status:    entity.OrderPlaced,
			OrderDate: "2024-05-01",
			BookingID: "APT-1",
			Items: []entity.OrderItem{{
				Part:             entity.PartSnapshot{PartID: uuid.New(), Title: "Filter", Price: 250},
				Quantity:         2,
				DeductedQuantity: 2,
			}},
		}
		require.NoError(t, orders.Create(ctx, order))
		assert.NotEqual(t, uuid.Nil, order.ID)

		got, err := orders.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Filter", got.Items[0].Part.Title)
		assert.Equal(t, int64(500), got.Total())

		linked, err := orders.ListByBooking(ctx, shop.ID, "APT-1")
		require.NoError(t, err)
		assert.Len(t, linked, 1)

		require.NoError(t, orders.UpdateStatus(ctx, order.ID, entity.OrderConfirmed))
		got, err = orders.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderConfirmed, got.Status)

		_, err = orders.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("profile save upserts", func(t *testing.T) {
		owner, shop := seedShop(t, db)
		profiles := NewProfileRepository(db)

		profile := entity.NewDefaultProfile(owner.ID, owner.Email, "Owner")
		require.NoError(t, profiles.Save(ctx, profile))
		assert.True(t, profile.Persisted)

		profile.Role = entity.RoleShopOwner
		profile.ShopID = &shop.ID
		require.NoError(t, profiles.Save(ctx, profile))

		got, err := profiles.FindByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.True(t, got.OwnsShop(shop.ID))

		require.NoError(t, profiles.UpdatePushToken(ctx, owner.ID, "token-1"))
		require.NoError(t, profiles.ClearPushToken(ctx, "token-1"))
		got, err = profiles.FindByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, got.PushToken)
	})

	t.Run("review exists", func(t *testing.T) {
		author, shop := seedShop(t, db)
		reviews := NewReviewRepository(db)
		itemID := uuid.New()

		exists, err := reviews.Exists(ctx, itemID, author.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, reviews.Create(ctx, &entity.Review{
			AuthorID: author.ID,
			ShopID:   shop.ID,
			ItemID:   itemID,
			ItemType: entity.ReviewItemOrder,
			Rating:   4,
		}))

		exists, err = reviews.Exists(ctx, itemID, author.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("second shop for owner is rejected", func(t *testing.T) {
		owner, _ := seedShop(t, db)
		err := NewShopRepository(db).Create(ctx, &entity.Shop{OwnerID: owner.ID, Title: "Another"})
		assert.Error(t, err)
	})

	t.Run("refresh token is consumed once", func(t *testing.T) {
		owner, _ := seedShop(t, db)
		tokens := NewRefreshTokenRepository(db)

		require.NoError(t, tokens.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    owner.ID,
			TokenHash: "hash-" + owner.ID.String(),
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		got, err := tokens.ConsumeRefreshToken(ctx, "hash-"+owner.ID.String())
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.UserID)

		_, err = tokens.ConsumeRefreshToken(ctx, "hash-"+owner.ID.String())
		assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	})

	t.Run("rename user", func(t *testing.T) {
		owner, _ := seedShop(t, db)
		users := NewUserRepository(db)

		require.NoError(t, users.UpdateName(ctx, owner.ID, "Renamed"))
		got, err := users.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)

		assert.ErrorIs(t, users.UpdateName(ctx, uuid.New(), "Nobody"), repository.ErrUserNotFound)
	})
}
