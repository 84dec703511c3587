// Package model holds the GORM row types. Repositories map them to entities;
// nothing above the persistence layer imports this package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the account row; Email is the login identifier.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile         *UserProfileModel     `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// UserProfileModel shares its primary key with users. Role stores the
// canonical label; older rows may hold other spellings, see entity.ParseRole.
type UserProfileModel struct {
	UserID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email       string     `gorm:"type:varchar(255)"`
	DisplayName string     `gorm:"type:varchar(100)"`
	Phone       string     `gorm:"type:varchar(50)"`
	Role        string     `gorm:"type:varchar(20);not null;default:customer"`
	ShopID      *uuid.UUID `gorm:"type:uuid"`
	ImageURL    string     `gorm:"type:text"`
	PushToken   string     `gorm:"type:text;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserProfileModel) TableName() string { return "user_profiles" }
