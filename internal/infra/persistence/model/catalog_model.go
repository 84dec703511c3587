package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. owner_id is unique: one shop per owner.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100);index"`
	Phone       string    `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255)"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ServiceModel mirrors the 'shop_services' table.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Rating      float64   `gorm:"type:numeric(3,2);not null;default:0"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "shop_services"
}

// SparePartModel mirrors the 'spare_parts' table. quantity has a CHECK (quantity >= 0).
type SparePartModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	ImageURL        string    `gorm:"type:text"`
	Price           int64     `gorm:"not null"`
	ManageInventory bool      `gorm:"not null;default:false"`
	Quantity        int       `gorm:"not null;default:0"`
	LowStockLimit   int       `gorm:"not null;default:10"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SparePartModel) TableName() string {
	return "spare_parts"
}
