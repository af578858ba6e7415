// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an identity account can hold.
type Role string

const (
	// RoleAdministrator manages every customer record.
	RoleAdministrator Role = "Administrator"
	// RoleCustomer is the self-service role bound to one customer record.
	RoleCustomer Role = "Customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleCustomer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Primary picks the role that governs controller decisions.
// Customer wins over Administrator so that a dual-role account is always
// restricted to its own record.
func (rs Roles) Primary() (Role, bool) {
	switch {
	case rs.Contains(RoleCustomer):
		return RoleCustomer, true
	case rs.Contains(RoleAdministrator):
		return RoleAdministrator, true
	default:
		return "", false
	}
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
