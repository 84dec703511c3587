package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Status holds the canonical label.
type OrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID          *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName        string     `gorm:"type:varchar(100)"`
	CustomerEmail       string     `gorm:"type:varchar(255)"`
	CustomerContact     string     `gorm:"type:varchar(50)"`
	Status              string     `gorm:"type:varchar(40);not null"`
	Address             string     `gorm:"type:text"`
	SpecialRequirements string     `gorm:"type:text"`
	OrderDate           string     `gorm:"type:varchar(20);not null;index"`
	BookingID           string     `gorm:"type:varchar(64);index"`
	ManualEntry         bool       `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. The part_* columns are a
// snapshot of the spare part when the order was created.
type OrderItemModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PartID           uuid.UUID `gorm:"type:uuid;not null"`
	PartTitle        string    `gorm:"type:varchar(200);not null"`
	PartDescription  string    `gorm:"type:text"`
	PartImageURL     string    `gorm:"type:text"`
	PartPrice        int64     `gorm:"not null"`
	Quantity         int       `gorm:"not null"`
	DeductedQuantity int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// AppointmentModel mirrors the 'appointments' table.
type AppointmentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AppointmentID   string     `gorm:"type:varchar(64)"`
	ShopID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string     `gorm:"type:varchar(100)"`
	CustomerEmail   string     `gorm:"type:varchar(255)"`
	CustomerContact string     `gorm:"type:varchar(50)"`
	ServiceID       uuid.UUID  `gorm:"type:uuid;not null"`
	ServiceName     string     `gorm:"type:varchar(200)"`
	ServiceImage    string     `gorm:"type:text"`
	ServicePrice    float64    `gorm:"type:numeric(12,2);not null"`
	Status          string     `gorm:"type:varchar(20);not null"`
	Date            string     `gorm:"type:varchar(20);not null;index"`
	Time            string     `gorm:"type:varchar(20)"`
	Bill            string     `gorm:"type:varchar(32)"`
	ManualEntry     bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ReviewModel mirrors the 'reviews' table. (item_id, author_id) is indexed but not unique.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_item_author"`
	AuthorName string    `gorm:"type:varchar(100)"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_item_author"`
	ItemType   string    `gorm:"type:varchar(20);not null"`
	Rating     float64   `gorm:"type:numeric(2,1);not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
