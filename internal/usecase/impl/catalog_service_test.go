package impl

import (
	"context"
	"testing"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	mockRepo "autohub/internal/mocks/repository"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	shopRepo    *mockRepo.MockShopRepository
	serviceRepo *mockRepo.MockServiceRepository
	partRepo    *mockRepo.MockSparePartRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fixtures := catalogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		partRepo:    mockRepo.NewMockSparePartRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
	}

	fixtures.service = NewCatalogService(CatalogServiceParams{
		TxManager:   fixtures.txManager,
		ShopRepo:    fixtures.shopRepo,
		ServiceRepo: fixtures.serviceRepo,
		PartRepo:    fixtures.partRepo,
		ReviewRepo:  fixtures.reviewRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func onboardingSession() *entity.Session {
	principalID := uuid.New()

	return entity.NewSession(principalID, &entity.UserProfile{
		UserID:      principalID,
		DisplayName: "New Owner",
		Role:        entity.RoleShopOwner,
		Persisted:   true,
	})
}

func TestCatalogService_CreateShop(t *testing.T) {
	input := &usecase.ShopInput{Title: " Fast Fix ", Address: "1 Road", Email: "Shop@Example.com"}

	t.Run("links the shop to the profile", func(t *testing.T) {
		f := createTestCatalogService(t)
		session := onboardingSession()

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			shopRepo := mockRepo.NewMockShopRepository(t)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)
			factory.EXPECT().NewShopRepository().Return(shopRepo)

			profileRepo.EXPECT().FindByUserID(mock.Anything, session.PrincipalID).Return(session.Profile, nil)
			shopRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Shop")).
				RunAndReturn(func(_ context.Context, shop *entity.Shop) error {
					shop.ID = uuid.New()

					return nil
				})
			profileRepo.EXPECT().
				Save(mock.Anything, mock.MatchedBy(func(profile *entity.UserProfile) bool {
					return profile.ShopID != nil && *profile.ShopID != uuid.Nil
				})).
				Return(nil)
		})

		shop, err := f.service.CreateShop(context.Background(), session, input)

		require.NoError(t, err)
		assert.Equal(t, "Fast Fix", shop.Title)
		assert.Equal(t, "shop@example.com", shop.Email)
		assert.Equal(t, session.PrincipalID, shop.OwnerID)
	})

	t.Run("owner already has a shop", func(t *testing.T) {
		f := createTestCatalogService(t)
		session := ownerSession(uuid.New())

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)
			profileRepo.EXPECT().FindByUserID(mock.Anything, session.PrincipalID).Return(session.Profile, nil)
		})

		_, err := f.service.CreateShop(context.Background(), session, input)

		assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyOwned)
	})

	t.Run("customers cannot create shops", func(t *testing.T) {
		f := createTestCatalogService(t)
		session := customerSession()

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().NewProfileRepository().Return(profileRepo)
			profileRepo.EXPECT().FindByUserID(mock.Anything, session.PrincipalID).Return(session.Profile, nil)
		})

		_, err := f.service.CreateShop(context.Background(), session, input)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("title is required", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateShop(context.Background(), onboardingSession(), &usecase.ShopInput{Address: "1 Road"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_GetShop(t *testing.T) {
	f := createTestCatalogService(t)
	shop := &entity.Shop{ID: uuid.New()}

	f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
	f.serviceRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return([]*entity.ShopService{{ID: uuid.New()}}, nil)
	f.partRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return([]*entity.SparePart{}, nil)
	f.reviewRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return([]*entity.Review{{Rating: 4}, {Rating: 5}}, nil)

	details, err := f.service.GetShop(context.Background(), shop.ID)

	require.NoError(t, err)
	assert.Len(t, details.Services, 1)
	assert.InDelta(t, 4.5, details.AverageRating, 0.001)
}

func TestCatalogService_GetShop_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	shopID := uuid.New()
	f.shopRepo.EXPECT().FindByID(mock.Anything, shopID).Return(nil, repository.ErrShopNotFound)

	_, err := f.service.GetShop(context.Background(), shopID)

	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestCatalogService_DeleteShop_UnlinksProfile(t *testing.T) {
	f := createTestCatalogService(t)
	shopID := uuid.New()
	session := ownerSession(shopID)

	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().NewShopRepository().Return(shopRepo)
		factory.EXPECT().NewProfileRepository().Return(profileRepo)

		shopRepo.EXPECT().Delete(mock.Anything, shopID).Return(nil)
		profileRepo.EXPECT().FindByUserID(mock.Anything, session.PrincipalID).Return(&entity.UserProfile{ShopID: &shopID}, nil)
		profileRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(profile *entity.UserProfile) bool { return profile.ShopID == nil })).
			Return(nil)
	})

	require.NoError(t, f.service.DeleteShop(context.Background(), session, shopID))
}

func TestCatalogService_Services(t *testing.T) {
	t.Run("create in own shop", func(t *testing.T) {
		f := createTestCatalogService(t)
		shopID := uuid.New()
		f.serviceRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ShopService")).Return(nil)

		created, err := f.service.CreateService(context.Background(), ownerSession(shopID), &usecase.ServiceInput{Name: "Alignment", Price: 80})

		require.NoError(t, err)
		assert.Equal(t, shopID, created.ShopID)
	})

	t.Run("negative price", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateService(context.Background(), ownerSession(uuid.New()), &usecase.ServiceInput{Name: "Alignment", Price: -1})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("update another shop's service", func(t *testing.T) {
		f := createTestCatalogService(t)
		shopService := &entity.ShopService{ID: uuid.New(), ShopID: uuid.New()}
		f.serviceRepo.EXPECT().FindByID(mock.Anything, shopService.ID).Return(shopService, nil)

		_, err := f.service.UpdateService(context.Background(), ownerSession(uuid.New()), shopService.ID, &usecase.ServiceInput{Name: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCatalogService_SpareParts(t *testing.T) {
	t.Run("default low stock limit", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.partRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.SparePart")).Return(nil)

		part, err := f.service.CreateSparePart(context.Background(), ownerSession(uuid.New()), &usecase.SparePartInput{
			Title:           "Filter",
			Price:           30,
			ManageInventory: true,
			Quantity:        4,
		})

		require.NoError(t, err)
		assert.Equal(t, 10, part.LowStockLimit)
		assert.True(t, part.IsLowStock())
	})

	t.Run("explicit zero low stock limit", func(t *testing.T) {
		f := createTestCatalogService(t)
		zero := 0
		f.partRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.SparePart")).Return(nil)

		part, err := f.service.CreateSparePart(context.Background(), ownerSession(uuid.New()), &usecase.SparePartInput{
			Title:         "Filter",
			LowStockLimit: &zero,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, part.LowStockLimit)
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateSparePart(context.Background(), ownerSession(uuid.New()), &usecase.SparePartInput{Title: "Filter", Quantity: -1})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("onboarding owner has no shop", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateSparePart(context.Background(), onboardingSession(), &usecase.SparePartInput{Title: "Filter"})

		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("search clamps the limit", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.partRepo.EXPECT().
			Search(mock.Anything, repository.SparePartFilter{Query: "pad", Limit: 50}).
			Return([]*entity.SparePart{}, nil)

		_, err := f.service.SearchSpareParts(context.Background(), usecase.SparePartQuery{Query: " pad "})

		require.NoError(t, err)
	})

	t.Run("delete another shop's part", func(t *testing.T) {
		f := createTestCatalogService(t)
		part := newPart(uuid.New(), 1)
		f.partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)

		err := f.service.DeleteSparePart(context.Background(), ownerSession(uuid.New()), part.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
