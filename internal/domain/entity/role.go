package entity

import "strings"

// Role decides which workflows a profile may drive.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopOwner Role = "shop_owner"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the marketplace roles.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleShopOwner
}

// ParseRole reads a role label as stored on a profile. Labels written with
// spaces or dashes ("Shop Owner", "shop-owner") are accepted; anything else
// resolves to the customer role.
func ParseRole(label string) Role {
	normalized := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(label)))
	if role := Role(normalized); role.IsValid() {
		return role
	}

	return RoleCustomer
}

// Roles is the role claim carried by an access token.
type Roles []Role

// ToStrings renders the claim for the token payload.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, role := range rs {
		out = append(out, string(role))
	}

	return out
}
