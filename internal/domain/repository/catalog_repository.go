package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// Catalog lookup errors.
var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrSparePartNotFound = errors.New("spare part not found")
)

// ShopFilter narrows shop listings.
type ShopFilter struct {
	City  string
	Query string // Case-insensitive substring of the title.
	Limit int
}

// ShopRepository persists shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	List(ctx context.Context, filter ShopFilter) ([]*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceRepository persists the services a shop offers.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.ShopService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopService, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopService, error)
	Update(ctx context.Context, service *entity.ShopService) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SparePartFilter narrows spare part searches. A nil ShopID searches every shop.
type SparePartFilter struct {
	ShopID *uuid.UUID
	Query  string
	Limit  int
}

// SparePartRepository persists spare parts and adjusts their inventory.
type SparePartRepository interface {
	Create(ctx context.Context, part *entity.SparePart) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SparePart, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.SparePart, error)
	Search(ctx context.Context, filter SparePartFilter) ([]*entity.SparePart, error)
	Update(ctx context.Context, part *entity.SparePart) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecreaseQuantity locks the part row, stores max(0, quantity-amount) and
	// returns the updated part with the amount actually removed. Parts that do
	// not manage inventory are returned unchanged with zero removed.
	DecreaseQuantity(ctx context.Context, id uuid.UUID, amount int) (*entity.SparePart, int, error)

	// RestoreQuantity adds amount back to a managed part.
	RestoreQuantity(ctx context.Context, id uuid.UUID, amount int) error
}
