package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is an auto repair shop that sells services and spare parts.
// One owner maps to at most one shop.
type Shop struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // Principal that created the shop during onboarding.
	Title       string
	Description string
	Address     string
	City        string
	Phone       string
	Email       string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShopService is a bookable service offered by a shop.
type ShopService struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	Price       float64 // Non-negative.
	Rating      float64 // Advisory value kept for older clients; reviews are authoritative.
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
