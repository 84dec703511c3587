package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryAdjustment reports the outcome of a quantity change.
type InventoryAdjustment struct {
	Part    *entity.SparePart
	Removed int
}

// InventoryUsecase lets a shop owner adjust stock outside of orders.
type InventoryUsecase interface {
	// DecreaseQuantity removes up to amount units; the quantity never goes below zero.
	DecreaseQuantity(ctx context.Context, session *entity.Session, partID uuid.UUID, amount int) (*InventoryAdjustment, error)
	RestoreQuantity(ctx context.Context, session *entity.Session, partID uuid.UUID, amount int) (*entity.SparePart, error)
}
