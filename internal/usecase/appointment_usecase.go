package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// BookAppointmentInput is a customer booking a service slot.
type BookAppointmentInput struct {
	ShopID    uuid.UUID
	ServiceID uuid.UUID
	Date      string
	Time      string
	Contact   string
}

// ManualAppointmentInput is a walk-in booking recorded by the shop owner.
type ManualAppointmentInput struct {
	ServiceID       uuid.UUID
	Date            string
	Time            string
	CustomerName    string
	CustomerEmail   string
	CustomerContact string
}

// BillOutput breaks an appointment bill into its parts.
type BillOutput struct {
	AppointmentID uuid.UUID
	ServicePrice  float64
	PartsTotal    float64
	Total         float64
	Orders        []*entity.Order
}

// AppointmentUsecase drives the appointment lifecycle.
type AppointmentUsecase interface {
	Book(ctx context.Context, session *entity.Session, input *BookAppointmentInput) (*entity.Appointment, error)
	CreateManual(ctx context.Context, session *entity.Session, input *ManualAppointmentInput) (*entity.Appointment, error)
	TransitionAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID, action entity.AppointmentAction) (*entity.Appointment, error)
	SetAppointmentStatus(ctx context.Context, session *entity.Session, appointmentID uuid.UUID, label string) (*entity.Appointment, error)
	GetAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error)
	ListShopAppointments(ctx context.Context, session *entity.Session, limit int) ([]*entity.Appointment, error)
	ListCustomerAppointments(ctx context.Context, session *entity.Session, limit int) ([]*entity.Appointment, error)
	Bill(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*BillOutput, error)
}
