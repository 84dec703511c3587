package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment does not exist.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, limit int) ([]*entity.Appointment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Appointment, error)

	// UpdateStatus overwrites the status and, when bill is non-empty, the bill.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, bill string) error
}
