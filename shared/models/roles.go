package models

// UserRole identifies the access level of an authenticated user.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleStoreAdmin UserRole = "store_admin"

	// RoleLocationUser is a branch-level cashier/operator account.
	RoleLocationUser UserRole = "location_user"

	// RoleBranchUser is an older name for RoleLocationUser that parts of the
	// backend still emit. Both names refer to the same role; policy code must
	// treat them interchangeably.
	RoleBranchUser UserRole = "branch_user"
)

// Canonical collapses the legacy branch_user name onto location_user. The raw
// value on a User record is preserved as received from the backend.
func (r UserRole) Canonical() UserRole {
	if r == RoleBranchUser {
		return RoleLocationUser
	}
	return r
}

// Known reports whether r is one of the defined roles.
func (r UserRole) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleStoreAdmin, RoleLocationUser, RoleBranchUser:
		return true
	}
	return false
}
