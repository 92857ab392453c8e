// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleTenant indicates a tenant/buyer browsing listings and expressing interest.
	RoleTenant Role = "tenant"
	// RoleOwner indicates a property owner publishing and managing listings.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleOwner:
		return true
	default:
		return false
	}
}
