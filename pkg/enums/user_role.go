package enums

import (
	"fmt"
	"strings"
)

// UserRole represents the account category chosen at signup.
type UserRole string

const (
	UserRoleRetailer  UserRole = "RETAILER"
	UserRoleCorporate UserRole = "CORPORATE"
	UserRoleSeller    UserRole = "SELLER"
)

var validUserRoles = []UserRole{
	UserRoleRetailer,
	UserRoleCorporate,
	UserRoleSeller,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// RequiresCompany reports whether signup must supply a company name for the role.
func (r UserRole) RequiresCompany() bool {
	return r == UserRoleCorporate || r == UserRoleSeller
}

// ParseUserRole converts raw input into a UserRole, case-insensitively.
func ParseUserRole(value string) (UserRole, error) {
	normalized := UserRole(strings.ToUpper(strings.TrimSpace(value)))
	for _, candidate := range validUserRoles {
		if candidate == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
