package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSession_Paths(t *testing.T) {
	principal := uuid.New()
	shopID := uuid.New()

	customer := NewSession(principal, NewDefaultProfile(principal, "a@b.c", "A"))
	assert.Equal(t, PathCustomer, customer.Path)
	assert.Equal(t, uuid.Nil, customer.ShopID())

	onboarding := NewSession(principal, &UserProfile{UserID: principal, Role: RoleShopOwner})
	assert.Equal(t, PathShopOwnerOnboarding, onboarding.Path)

	owner := NewSession(principal, &UserProfile{UserID: principal, Role: RoleShopOwner, ShopID: &shopID})
	assert.Equal(t, PathShopOwnerWithShop, owner.Path)
	assert.True(t, owner.OwnsShop(shopID))
	assert.False(t, owner.OwnsShop(uuid.New()))
}

func TestParseRole_FallsBackToCustomer(t *testing.T) {
	for label, want := range map[string]Role{
		" Shop_Owner ": RoleShopOwner,
		"Shop Owner":   RoleShopOwner,
		"shop-owner":   RoleShopOwner,
		"customer":     RoleCustomer,
		"admin":        RoleCustomer,
		"":             RoleCustomer,
	} {
		assert.Equal(t, want, ParseRole(label), label)
	}
}
