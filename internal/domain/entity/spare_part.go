package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLowStockLimit is used when a part is created without a threshold.
const DefaultLowStockLimit = 10

// SparePart is a catalog item sold by a shop. Quantity is only meaningful when
// ManageInventory is set and never goes below zero.
type SparePart struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Title           string
	Description     string
	ImageURL        string
	Price           int64 // Whole currency units.
	ManageInventory bool
	Quantity        int
	LowStockLimit   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLowStock reports whether a managed part is below its low-stock threshold.
func (p *SparePart) IsLowStock() bool {
	return p.ManageInventory && p.Quantity < p.LowStockLimit
}

// IsOutOfStock reports whether a managed part has nothing left.
func (p *SparePart) IsOutOfStock() bool {
	return p.ManageInventory && p.Quantity == 0
}

// ClampedDecrease returns the quantity left after removing amount and the amount
// actually removed. The result never goes below zero.
func ClampedDecrease(current, amount int) (remaining, removed int) {
	if amount <= 0 {
		return current, 0
	}

	remaining = max(0, current-amount)

	return remaining, current - remaining
}

// Snapshot copies the fields an order keeps as "what was ordered".
func (p *SparePart) Snapshot() PartSnapshot {
	return PartSnapshot{
		PartID:      p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}

// PartSnapshot is a denormalised copy of a spare part at order time.
// It does not follow later catalog edits.
type PartSnapshot struct {
	PartID      uuid.UUID `json:"partId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       int64     `json:"price"`
}
