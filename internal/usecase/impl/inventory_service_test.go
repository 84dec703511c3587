package impl

import (
	"context"
	"testing"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_DecreaseQuantity(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		partRepo := mockRepo.NewMockSparePartRepository(t)
		metrics := mockSvc.NewMockMetrics(t)
		svc := NewInventoryService(partRepo, metrics, newDiscardLogger())
		shopID := uuid.New()
		part := newPart(shopID, 3)

		partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)
		partRepo.EXPECT().DecreaseQuantity(mock.Anything, part.ID, 5).
			Return(&entity.SparePart{ID: part.ID, ShopID: shopID, ManageInventory: true, Quantity: 0}, 3, nil)
		metrics.EXPECT().InventoryAdjusted(inventoryDecrease, 3).Return()

		adjustment, err := svc.DecreaseQuantity(context.Background(), ownerSession(shopID), part.ID, 5)

		require.NoError(t, err)
		assert.Equal(t, 3, adjustment.Removed)
		assert.Equal(t, 0, adjustment.Part.Quantity)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc := NewInventoryService(mockRepo.NewMockSparePartRepository(t), mockSvc.NewMockMetrics(t), newDiscardLogger())

		_, err := svc.DecreaseQuantity(context.Background(), ownerSession(uuid.New()), uuid.New(), 0)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("other shop", func(t *testing.T) {
		partRepo := mockRepo.NewMockSparePartRepository(t)
		svc := NewInventoryService(partRepo, mockSvc.NewMockMetrics(t), newDiscardLogger())
		part := newPart(uuid.New(), 3)
		partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)

		_, err := svc.DecreaseQuantity(context.Background(), ownerSession(uuid.New()), part.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing part", func(t *testing.T) {
		partRepo := mockRepo.NewMockSparePartRepository(t)
		svc := NewInventoryService(partRepo, mockSvc.NewMockMetrics(t), newDiscardLogger())
		partID := uuid.New()
		partRepo.EXPECT().FindByID(mock.Anything, partID).Return(nil, repository.ErrSparePartNotFound)

		_, err := svc.DecreaseQuantity(context.Background(), ownerSession(uuid.New()), partID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrSparePartNotFound)
	})
}

func TestInventoryService_RestoreQuantity(t *testing.T) {
	partRepo := mockRepo.NewMockSparePartRepository(t)
	metrics := mockSvc.NewMockMetrics(t)
	svc := NewInventoryService(partRepo, metrics, newDiscardLogger())
	shopID := uuid.New()
	part := newPart(shopID, 3)
	restored := newPart(shopID, 5)
	restored.ID = part.ID

	partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil).Once()
	partRepo.EXPECT().RestoreQuantity(mock.Anything, part.ID, 2).Return(nil)
	partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(restored, nil).Once()
	metrics.EXPECT().InventoryAdjusted(inventoryRestore, 2).Return()

	updated, err := svc.RestoreQuantity(context.Background(), ownerSession(shopID), part.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
}
