package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalRole(t *testing.T) {
	assert.Equal(t, RoleLocationUser, RoleBranchUser.Canonical())
	assert.Equal(t, RoleLocationUser, RoleLocationUser.Canonical())
	assert.Equal(t, RoleSuperAdmin, RoleSuperAdmin.Canonical())
	assert.Equal(t, RoleStoreAdmin, RoleStoreAdmin.Canonical())
	assert.Equal(t, UserRole("auditor"), UserRole("auditor").Canonical())
}

func TestKnownRole(t *testing.T) {
	for _, r := range []UserRole{RoleSuperAdmin, RoleStoreAdmin, RoleLocationUser, RoleBranchUser} {
		assert.True(t, r.Known(), string(r))
	}
	assert.False(t, UserRole("auditor").Known())
	assert.False(t, UserRole("").Known())
}

func TestCanActOnBranch(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()

	cashier := &User{Role: RoleLocationUser, BranchID: &mine}
	assert.True(t, cashier.CanActOnBranch(mine))
	assert.False(t, cashier.CanActOnBranch(other))

	// Legacy role name behaves the same way.
	legacy := &User{Role: RoleBranchUser, BranchID: &mine}
	assert.True(t, legacy.CanActOnBranch(mine))
	assert.False(t, legacy.CanActOnBranch(other))

	unassigned := &User{Role: RoleLocationUser}
	assert.False(t, unassigned.CanActOnBranch(mine))

	admin := &User{Role: RoleStoreAdmin}
	assert.True(t, admin.CanActOnBranch(other))

	super := &User{Role: RoleSuperAdmin}
	assert.True(t, super.CanActOnBranch(other))
}
