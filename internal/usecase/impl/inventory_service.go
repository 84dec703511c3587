package impl

import (
	"context"
	"log/slog"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	inventoryDecrease = "decrease"
	inventoryRestore  = "restore"
)

type inventoryService struct {
	partRepo repository.SparePartRepository
	metrics  service.Metrics
	logger   *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(partRepo repository.SparePartRepository, metrics service.Metrics, logger *slog.Logger) usecase.InventoryUsecase {
	return &inventoryService{
		partRepo: partRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DecreaseQuantity removes up to amount units. The caller must not assume the
// decrement happened unless no error is returned.
func (srv *inventoryService) DecreaseQuantity(ctx context.Context, session *entity.Session, partID uuid.UUID, amount int) (*usecase.InventoryAdjustment, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}

	if err := srv.checkOwner(ctx, session, partID); err != nil {
		return nil, err
	}

	part, removed, err := srv.partRepo.DecreaseQuantity(ctx, partID, amount)
	if err != nil {
		srv.log(ctx).Error("Inventory decrement failed", slog.Any("partID", partID), slog.Int("amount", amount), slog.Any("error", err))

		return nil, translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to decrease quantity")
	}

	srv.metrics.InventoryAdjusted(inventoryDecrease, removed)
	srv.log(ctx).Debug("Inventory decreased",
		slog.Any("partID", partID),
		slog.Int("requested", amount),
		slog.Int("removed", removed),
		slog.Int("remaining", part.Quantity),
	)

	return &usecase.InventoryAdjustment{Part: part, Removed: removed}, nil
}

// RestoreQuantity adds amount units back to a managed part.
func (srv *inventoryService) RestoreQuantity(ctx context.Context, session *entity.Session, partID uuid.UUID, amount int) (*entity.SparePart, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}

	if err := srv.checkOwner(ctx, session, partID); err != nil {
		return nil, err
	}

	if err := srv.partRepo.RestoreQuantity(ctx, partID, amount); err != nil {
		return nil, errors.Wrap(err, "failed to restore quantity")
	}

	part, err := srv.partRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload spare part")
	}

	if part.ManageInventory {
		srv.metrics.InventoryAdjusted(inventoryRestore, amount)
	}

	return part, nil
}

func (srv *inventoryService) checkOwner(ctx context.Context, session *entity.Session, partID uuid.UUID) error {
	part, err := srv.partRepo.FindByID(ctx, partID)
	if err != nil {
		return translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to find spare part")
	}
	if !session.OwnsShop(part.ShopID) {
		return domainerrors.ErrForbidden.WrapMessage("spare part belongs to another shop")
	}

	return nil
}
