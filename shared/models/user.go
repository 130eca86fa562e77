package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account as returned by the backend. The
// gateway never persists users; a User lives only inside a session record and
// is replaced wholesale on every profile refresh.
type User struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     UserRole   `json:"role"`
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
	IsActive bool       `json:"is_active"`

	// Denormalized display objects, present when the backend expands them.
	Tenant *Tenant `json:"tenant,omitempty"`
	Branch *Branch `json:"branch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsSuperAdmin reports whether the user holds the platform-wide admin role.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanActOnBranch reports whether the user may perform branch-scoped actions
// (stock-in, POS) on the given branch.
func (u *User) CanActOnBranch(branchID uuid.UUID) bool {
	if u.IsSuperAdmin() || u.Role == RoleStoreAdmin {
		return true
	}
	return u.BranchID != nil && *u.BranchID == branchID
}
