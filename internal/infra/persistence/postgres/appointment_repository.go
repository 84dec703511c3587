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

// appointmentRepository implements the domain.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required appointment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate loads the appointment under a row lock. It must run inside a transaction.
func (repo *appointmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *appointmentRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel
	if err := db.Where("id = ?", id).First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return toAppointmentDomain(&appointmentM), nil
}

func (repo *appointmentRepository) ListByShop(ctx context.Context, shopID uuid.UUID, limit int) ([]*entity.Appointment, error) {
	return repo.list(ctx, limit, "shop_id = ?", shopID)
}

func (repo *appointmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Appointment, error) {
	return repo.list(ctx, limit, "customer_id = ?", customerID)
}

func (repo *appointmentRepository) list(ctx context.Context, limit int, cond string, arg any) ([]*entity.Appointment, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where(cond, arg).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointmentModels []*model.AppointmentModel
	if err := query.Find(&appointmentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// UpdateStatus stores the new status. An empty bill leaves the stored bill unchanged.
func (repo *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, bill string) error {
	updates := map[string]any{"status": status.String()}
	if bill != "" {
		updates["bill"] = bill
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	status, ok := entity.ParseAppointmentStatus(data.Status)
	if !ok {
		status = entity.AppointmentStatus(data.Status)
	}

	return &entity.Appointment{
		ID:            data.ID,
		AppointmentID: data.AppointmentID,
		ShopID:        data.ShopID,
		Customer: entity.CustomerInfo{
			ID:      data.CustomerID,
			Name:    data.CustomerName,
			Email:   data.CustomerEmail,
			Contact: data.CustomerContact,
		},
		ServiceID:    data.ServiceID,
		ServiceName:  data.ServiceName,
		ServiceImage: data.ServiceImage,
		ServicePrice: data.ServicePrice,
		Status:       status,
		Date:         data.Date,
		Time:         data.Time,
		Bill:         data.Bill,
		ManualEntry:  data.ManualEntry,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:              data.ID,
		AppointmentID:   data.AppointmentID,
		ShopID:          data.ShopID,
		CustomerID:      data.Customer.ID,
		CustomerName:    data.Customer.Name,
		CustomerEmail:   data.Customer.Email,
		CustomerContact: data.Customer.Contact,
		ServiceID:       data.ServiceID,
		ServiceName:     data.ServiceName,
		ServiceImage:    data.ServiceImage,
		ServicePrice:    data.ServicePrice,
		Status:          data.Status.String(),
		Date:            data.Date,
		Time:            data.Time,
		Bill:            data.Bill,
		ManualEntry:     data.ManualEntry,
	}
}
