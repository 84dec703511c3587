package postgres

import (
	"context"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate loads the order under a row lock. It must run inside a transaction.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *orderRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.Preload("Items").Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID, limit int) ([]*entity.Order, error) {
	return repo.list(ctx, limit, "shop_id = ?", shopID)
}

func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error) {
	return repo.list(ctx, limit, "customer_id = ?", customerID)
}

// ListByBooking returns the orders of a shop linked to an appointment booking key.
func (repo *orderRepository) ListByBooking(ctx context.Context, shopID uuid.UUID, bookingKey string) ([]*entity.Order, error) {
	if bookingKey == "" {
		return []*entity.Order{}, nil
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("shop_id = ? AND booking_id = ?", shopID, bookingKey).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list booking orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) list(ctx context.Context, limit int, cond string, arg any) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Items").
		Where(cond, arg).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// toOrderDomain maps stored rows to the aggregate. Legacy status labels are
// normalised; an unknown label is kept verbatim.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	status, ok := entity.ParseOrderStatus(data.Status)
	if !ok {
		status = entity.OrderStatus(data.Status)
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:      itemM.ID,
			OrderID: itemM.OrderID,
			Part: entity.PartSnapshot{
				PartID:      itemM.PartID,
				Title:       itemM.PartTitle,
				Description: itemM.PartDescription,
				ImageURL:    itemM.PartImageURL,
				Price:       itemM.PartPrice,
			},
			Quantity:         itemM.Quantity,
			DeductedQuantity: itemM.DeductedQuantity,
		})
	}

	return &entity.Order{
		ID:     data.ID,
		ShopID: data.ShopID,
		Customer: entity.CustomerInfo{
			ID:      data.CustomerID,
			Name:    data.CustomerName,
			Email:   data.CustomerEmail,
			Contact: data.CustomerContact,
		},
		Items:               items,
		Status:              status,
		Address:             data.Address,
		SpecialRequirements: data.SpecialRequirements,
		OrderDate:           data.OrderDate,
		BookingID:           data.BookingID,
		ManualEntry:         data.ManualEntry,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:               item.ID,
			PartID:           item.Part.PartID,
			PartTitle:        item.Part.Title,
			PartDescription:  item.Part.Description,
			PartImageURL:     item.Part.ImageURL,
			PartPrice:        item.Part.Price,
			Quantity:         item.Quantity,
			DeductedQuantity: item.DeductedQuantity,
		})
	}

	return &model.OrderModel{
		ID:                  data.ID,
		ShopID:              data.ShopID,
		CustomerID:          data.Customer.ID,
		CustomerName:        data.Customer.Name,
		CustomerEmail:       data.Customer.Email,
		CustomerContact:     data.Customer.Contact,
		Status:              data.Status.String(),
		Address:             data.Address,
		SpecialRequirements: data.SpecialRequirements,
		OrderDate:           data.OrderDate,
		BookingID:           data.BookingID,
		ManualEntry:         data.ManualEntry,
		Items:               items,
	}
}
