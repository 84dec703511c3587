package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal: the account that signs in.
type User struct {
	ID        uuid.UUID // Principal identifier, shared with the UserProfile.
	Email     string    // Login identifier.
	Name      string    // Display name.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile holds marketplace data for a principal. It is created on sign-up
// with the customer role, edited by the owner and never hard-deleted.
type UserProfile struct {
	UserID      uuid.UUID  // Same value as User.ID.
	Email       string     // Contact email, defaults to the login email.
	DisplayName string     // Name shown to shops and customers.
	Phone       string     // Contact phone.
	Role        Role       // customer or shop_owner.
	ShopID      *uuid.UUID // Owned shop; only set for shop owners that finished onboarding.
	ImageURL    string     // Optional profile picture URL.
	PushToken   string     // Firebase Cloud Messaging registration token.
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Persisted   bool // False for a synthesised default profile that was never saved.
}

// NewDefaultProfile synthesises the customer profile used when a principal has
// no stored profile yet. It is not persisted until the first explicit save.
func NewDefaultProfile(userID uuid.UUID, email, displayName string) *UserProfile {
	return &UserProfile{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		Role:        RoleCustomer,
	}
}

// IsShopOwner reports whether the profile carries the shop_owner role.
func (p *UserProfile) IsShopOwner() bool {
	return p != nil && p.Role == RoleShopOwner
}

// OwnsShop reports whether the profile is the owner of the given shop.
func (p *UserProfile) OwnsShop(shopID uuid.UUID) bool {
	return p.IsShopOwner() && p.ShopID != nil && *p.ShopID == shopID
}
