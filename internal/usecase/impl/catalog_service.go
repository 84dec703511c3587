package impl

import (
	"context"
	"log/slog"
	"strings"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager     repository.TransactionManager
	shopRepo      repository.ShopRepository
	serviceRepo   repository.ServiceRepository
	partRepo      repository.SparePartRepository
	reviewRepo    repository.ReviewRepository
	lowStockLimit int
	listLimit     int
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ShopRepo    repository.ShopRepository
	ServiceRepo repository.ServiceRepository
	PartRepo    repository.SparePartRepository
	ReviewRepo  repository.ReviewRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService wires the shop, service and spare part catalog.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	lowStockLimit, listLimit := entity.DefaultLowStockLimit, 100
	if params.Config != nil && params.Config.Marketplace != nil {
		lowStockLimit = params.Config.Marketplace.DefaultLowStockLimit
		listLimit = params.Config.Marketplace.ListLimit
	}

	return &catalogService{
		txManager:     params.TxManager,
		shopRepo:      params.ShopRepo,
		serviceRepo:   params.ServiceRepo,
		partRepo:      params.PartRepo,
		reviewRepo:    params.ReviewRepo,
		lowStockLimit: lowStockLimit,
		listLimit:     listLimit,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Shops ---

func validateShopInput(input *usecase.ShopInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("shop title is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("shop address is required")
	}

	return nil
}

func applyShopInput(shop *entity.Shop, input *usecase.ShopInput) {
	shop.Title = strings.TrimSpace(input.Title)
	shop.Description = strings.TrimSpace(input.Description)
	shop.Address = strings.TrimSpace(input.Address)
	shop.City = strings.TrimSpace(input.City)
	shop.Phone = strings.TrimSpace(input.Phone)
	shop.Email = normalizeEmail(input.Email)
	shop.ImageURL = strings.TrimSpace(input.ImageURL)
}

// CreateShop creates the shop and links it to the owner's profile in one transaction.
func (srv *catalogService) CreateShop(ctx context.Context, session *entity.Session, input *usecase.ShopInput) (*entity.Shop, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if err := validateShopInput(input); err != nil {
		return nil, err
	}

	shop := &entity.Shop{OwnerID: session.PrincipalID}
	applyShopInput(shop, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.FindByUserID(ctx, session.PrincipalID)
		if err != nil {
			return translateNotFound(err, repository.ErrProfileNotFound, domainerrors.ErrForbidden, "shop owner profile required")
		}
		if !profile.IsShopOwner() {
			return domainerrors.ErrForbidden.WrapMessage("shop owner role required")
		}
		if profile.ShopID != nil {
			return domainerrors.ErrShopAlreadyOwned.WrapMessage("shop owner already has a shop")
		}

		if err := repoFactory.NewShopRepository().Create(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to create shop")
		}

		profile.ShopID = &shop.ID

		return profileRepo.Save(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create shop transaction")
	}

	srv.log(ctx).Info("Shop created", slog.Any("shopID", shop.ID), slog.Any("ownerID", shop.OwnerID))

	return shop, nil
}

// GetShop returns the shop with its catalog and review average.
func (srv *catalogService) GetShop(ctx context.Context, shopID uuid.UUID) (*usecase.ShopDetails, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
	}

	services, err := srv.serviceRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	parts, err := srv.partRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spare parts")
	}

	reviews, err := srv.reviewRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ShopDetails{
		Shop:          shop,
		Services:      services,
		SpareParts:    parts,
		AverageRating: entity.AverageRating(reviews),
	}, nil
}

func (srv *catalogService) ListShops(ctx context.Context, query usecase.ShopQuery) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx, repository.ShopFilter{
		City:  strings.TrimSpace(query.City),
		Query: strings.TrimSpace(query.Query),
		Limit: clampLimit(query.Limit, srv.listLimit),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

func (srv *catalogService) UpdateShop(ctx context.Context, session *entity.Session, shopID uuid.UUID, input *usecase.ShopInput) (*entity.Shop, error) {
	if !session.OwnsShop(shopID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the owner can edit the shop")
	}
	if err := validateShopInput(input); err != nil {
		return nil, err
	}

	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
	}

	applyShopInput(shop, input)
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to update shop")
	}

	return shop, nil
}

// DeleteShop removes the shop and unlinks it from the owner's profile.
func (srv *catalogService) DeleteShop(ctx context.Context, session *entity.Session, shopID uuid.UUID) error {
	if !session.OwnsShop(shopID) {
		return domainerrors.ErrForbidden.WrapMessage("only the owner can delete the shop")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewShopRepository().Delete(ctx, shopID); err != nil {
			return translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to delete shop")
		}

		profileRepo := repoFactory.NewProfileRepository()
		profile, err := profileRepo.FindByUserID(ctx, session.PrincipalID)
		if err != nil {
			return errors.Wrap(err, "failed to find owner profile")
		}

		profile.ShopID = nil

		return profileRepo.Save(ctx, profile)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete shop transaction")
	}

	srv.log(ctx).Info("Shop deleted", slog.Any("shopID", shopID))

	return nil
}

// --- Services ---

func validateServiceInput(input *usecase.ServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("service name is required")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("service price must not be negative")
	}
	if !(input.Rating >= 0 && input.Rating <= entity.MaxRating) {
		return domainerrors.ErrValidationFailed.WrapMessage("service rating must be between 0 and 5")
	}

	return nil
}

func applyServiceInput(shopService *entity.ShopService, input *usecase.ServiceInput) {
	shopService.Name = strings.TrimSpace(input.Name)
	shopService.Description = strings.TrimSpace(input.Description)
	shopService.Price = input.Price
	shopService.Rating = input.Rating
	shopService.ImageURL = strings.TrimSpace(input.ImageURL)
}

func (srv *catalogService) CreateService(ctx context.Context, session *entity.Session, input *usecase.ServiceInput) (*entity.ShopService, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	shopService := &entity.ShopService{ShopID: shopID}
	applyServiceInput(shopService, input)

	if err := srv.serviceRepo.Create(ctx, shopService); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	return shopService, nil
}

func (srv *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*entity.ShopService, error) {
	shopService, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrServiceNotFound, domainerrors.ErrServiceNotFound, "failed to find service")
	}

	return shopService, nil
}

func (srv *catalogService) ListServices(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopService, error) {
	services, err := srv.serviceRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *catalogService) UpdateService(ctx context.Context, session *entity.Session, serviceID uuid.UUID, input *usecase.ServiceInput) (*entity.ShopService, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	shopService, err := srv.ownedService(ctx, session, serviceID)
	if err != nil {
		return nil, err
	}

	applyServiceInput(shopService, input)
	if err := srv.serviceRepo.Update(ctx, shopService); err != nil {
		return nil, translateNotFound(err, repository.ErrServiceNotFound, domainerrors.ErrServiceNotFound, "failed to update service")
	}

	return shopService, nil
}

func (srv *catalogService) DeleteService(ctx context.Context, session *entity.Session, serviceID uuid.UUID) error {
	if _, err := srv.ownedService(ctx, session, serviceID); err != nil {
		return err
	}

	if err := srv.serviceRepo.Delete(ctx, serviceID); err != nil {
		return translateNotFound(err, repository.ErrServiceNotFound, domainerrors.ErrServiceNotFound, "failed to delete service")
	}

	return nil
}

func (srv *catalogService) ownedService(ctx context.Context, session *entity.Session, serviceID uuid.UUID) (*entity.ShopService, error) {
	shopService, err := srv.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !session.OwnsShop(shopService.ShopID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("service belongs to another shop")
	}

	return shopService, nil
}

// --- Spare parts ---

func validateSparePartInput(input *usecase.SparePartInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("spare part title is required")
	case input.Price < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("spare part price must not be negative")
	case input.Quantity < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("spare part quantity must not be negative")
	case input.LowStockLimit != nil && *input.LowStockLimit < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("low stock limit must not be negative")
	}

	return nil
}

func (srv *catalogService) applySparePartInput(part *entity.SparePart, input *usecase.SparePartInput) {
	part.Title = strings.TrimSpace(input.Title)
	part.Description = strings.TrimSpace(input.Description)
	part.ImageURL = strings.TrimSpace(input.ImageURL)
	part.Price = input.Price
	part.ManageInventory = input.ManageInventory
	part.Quantity = input.Quantity

	switch {
	case input.LowStockLimit != nil:
		part.LowStockLimit = *input.LowStockLimit
	case part.LowStockLimit == 0:
		part.LowStockLimit = srv.lowStockLimit
	}
}

func (srv *catalogService) CreateSparePart(ctx context.Context, session *entity.Session, input *usecase.SparePartInput) (*entity.SparePart, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}
	if err := validateSparePartInput(input); err != nil {
		return nil, err
	}

	part := &entity.SparePart{ShopID: shopID}
	srv.applySparePartInput(part, input)

	if err := srv.partRepo.Create(ctx, part); err != nil {
		return nil, errors.Wrap(err, "failed to create spare part")
	}

	return part, nil
}

func (srv *catalogService) GetSparePart(ctx context.Context, partID uuid.UUID) (*entity.SparePart, error) {
	part, err := srv.partRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to find spare part")
	}

	return part, nil
}

// SearchSpareParts matches titles within one shop, or across all shops when no shop is given.
func (srv *catalogService) SearchSpareParts(ctx context.Context, query usecase.SparePartQuery) ([]*entity.SparePart, error) {
	parts, err := srv.partRepo.Search(ctx, repository.SparePartFilter{
		ShopID: query.ShopID,
		Query:  strings.TrimSpace(query.Query),
		Limit:  clampLimit(query.Limit, srv.listLimit),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search spare parts")
	}

	return parts, nil
}

func (srv *catalogService) UpdateSparePart(ctx context.Context, session *entity.Session, partID uuid.UUID, input *usecase.SparePartInput) (*entity.SparePart, error) {
	if err := validateSparePartInput(input); err != nil {
		return nil, err
	}

	part, err := srv.ownedSparePart(ctx, session, partID)
	if err != nil {
		return nil, err
	}

	srv.applySparePartInput(part, input)
	if err := srv.partRepo.Update(ctx, part); err != nil {
		return nil, translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to update spare part")
	}

	return part, nil
}

func (srv *catalogService) DeleteSparePart(ctx context.Context, session *entity.Session, partID uuid.UUID) error {
	if _, err := srv.ownedSparePart(ctx, session, partID); err != nil {
		return err
	}

	if err := srv.partRepo.Delete(ctx, partID); err != nil {
		return translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to delete spare part")
	}

	return nil
}

func (srv *catalogService) ownedSparePart(ctx context.Context, session *entity.Session, partID uuid.UUID) (*entity.SparePart, error) {
	part, err := srv.GetSparePart(ctx, partID)
	if err != nil {
		return nil, err
	}
	if !session.OwnsShop(part.ShopID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("spare part belongs to another shop")
	}

	return part, nil
}
