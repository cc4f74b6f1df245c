// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a dealership user.
type Role string

const (
	// RolePublic indicates an unauthenticated visitor. It is never stored.
	RolePublic Role = "Public"
	// RoleInventoryClerk indicates a user who manages vehicles and parts.
	RoleInventoryClerk Role = "Inventory Clerk"
	// RoleSalesperson indicates a user who records sales and purchases.
	RoleSalesperson Role = "Salesperson"
	// RoleManager indicates a user with access to business reports.
	RoleManager Role = "Manager"
	// RoleOwner indicates the dealership owner with full access.
	RoleOwner Role = "Owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePublic, RoleInventoryClerk, RoleSalesperson, RoleManager, RoleOwner:
		return true
	default:
		return false
	}
}

// IsAssignable reports whether the Role can be stored on a user account.
// Public is the implicit role of unauthenticated callers only.
func (r Role) IsAssignable() bool {
	return r.IsValid() && r != RolePublic
}

// RoleFromString converts a string to a Role, falling back to Public for
// anything unrecognized.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RolePublic
	}

	return role
}
