package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopInput holds the fields of a shop supplied by its owner.
type ShopInput struct {
	Title       string
	Description string
	Address     string
	City        string
	Phone       string
	Email       string
	ImageURL    string
}

// ShopQuery filters the public shop list.
type ShopQuery struct {
	City  string
	Query string
	Limit int
}

// ShopDetails is a shop with its catalog and review average.
type ShopDetails struct {
	Shop          *entity.Shop
	Services      []*entity.ShopService
	SpareParts    []*entity.SparePart
	AverageRating float64
}

// ServiceInput holds the fields of a bookable service.
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Rating      float64
	ImageURL    string
}

// SparePartInput holds the fields of a spare part. A nil LowStockLimit uses the configured default.
type SparePartInput struct {
	Title           string
	Description     string
	ImageURL        string
	Price           int64
	ManageInventory bool
	Quantity        int
	LowStockLimit   *int
}

// SparePartQuery searches parts by title, within one shop when ShopID is set.
type SparePartQuery struct {
	ShopID *uuid.UUID
	Query  string
	Limit  int
}

// CatalogUsecase manages shops, their services and their spare parts.
type CatalogUsecase interface {
	// CreateShop onboards a shop owner that has no shop yet and links the shop to the profile.
	CreateShop(ctx context.Context, session *entity.Session, input *ShopInput) (*entity.Shop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*ShopDetails, error)
	ListShops(ctx context.Context, query ShopQuery) ([]*entity.Shop, error)
	UpdateShop(ctx context.Context, session *entity.Session, shopID uuid.UUID, input *ShopInput) (*entity.Shop, error)
	DeleteShop(ctx context.Context, session *entity.Session, shopID uuid.UUID) error

	CreateService(ctx context.Context, session *entity.Session, input *ServiceInput) (*entity.ShopService, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*entity.ShopService, error)
	ListServices(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopService, error)
	UpdateService(ctx context.Context, session *entity.Session, serviceID uuid.UUID, input *ServiceInput) (*entity.ShopService, error)
	DeleteService(ctx context.Context, session *entity.Session, serviceID uuid.UUID) error

	CreateSparePart(ctx context.Context, session *entity.Session, input *SparePartInput) (*entity.SparePart, error)
	GetSparePart(ctx context.Context, partID uuid.UUID) (*entity.SparePart, error)
	SearchSpareParts(ctx context.Context, query SparePartQuery) ([]*entity.SparePart, error)
	UpdateSparePart(ctx context.Context, session *entity.Session, partID uuid.UUID, input *SparePartInput) (*entity.SparePart, error)
	DeleteSparePart(ctx context.Context, session *entity.Session, partID uuid.UUID) error
}
