// Package authz holds the single role-authorization policy for the gateway.
// Route handlers and middleware must go through IsAuthorized instead of
// comparing role strings inline, so the super-admin bypass cannot drift
// between call sites.
package authz

import "github.com/stockwise/console-gateway/shared/models"

// IsAuthorized reports whether a user holding role may access a resource
// restricted to the allow list.
//
// A super admin is allowed everywhere, regardless of the allow list. An empty
// allow list means the resource only requires authentication. For everyone
// else the role must be a member of the allow list, with branch_user and
// location_user treated as the same role on both sides of the check.
func IsAuthorized(role models.UserRole, allow []models.UserRole) bool {
	if role == models.RoleSuperAdmin {
		return true
	}
	if len(allow) == 0 {
		return true
	}
	canonical := role.Canonical()
	for _, a := range allow {
		if a.Canonical() == canonical {
			return true
		}
	}
	return false
}
