package entity

import "github.com/google/uuid"

// SessionPath is the navigation branch a principal lands on after role resolution.
type SessionPath string

const (
	// PathShopOwnerWithShop is a shop owner that already owns a shop.
	PathShopOwnerWithShop SessionPath = "shop_owner_with_shop"
	// PathShopOwnerOnboarding is a shop owner that still has to create a shop.
	PathShopOwnerOnboarding SessionPath = "shop_owner_onboarding"
	// PathCustomer is every other principal, including fail-open fallbacks.
	PathCustomer SessionPath = "customer"
)

// Session is the resolved identity passed explicitly into each workflow call.
type Session struct {
	PrincipalID uuid.UUID
	Profile     *UserProfile
	Path        SessionPath
	Degraded    bool // Set when the profile lookup failed and the customer path was assumed.
}

// NewSession derives the navigation path from a profile.
func NewSession(principalID uuid.UUID, profile *UserProfile) *Session {
	session := &Session{PrincipalID: principalID, Profile: profile, Path: PathCustomer}

	if profile.IsShopOwner() {
		if profile.ShopID != nil {
			session.Path = PathShopOwnerWithShop
		} else {
			session.Path = PathShopOwnerOnboarding
		}
	}

	return session
}

// IsShopOwner reports whether the session acts for a shop owner.
func (s *Session) IsShopOwner() bool {
	return s != nil && s.Profile.IsShopOwner()
}

// ShopID returns the owned shop, or uuid.Nil when there is none.
func (s *Session) ShopID() uuid.UUID {
	if s == nil || s.Profile == nil || s.Profile.ShopID == nil {
		return uuid.Nil
	}

	return *s.Profile.ShopID
}

// OwnsShop reports whether the session's principal owns shopID.
func (s *Session) OwnsShop(shopID uuid.UUID) bool {
	return s != nil && s.Profile.OwnsShop(shopID)
}
