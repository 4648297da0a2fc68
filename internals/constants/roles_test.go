package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRank(t *testing.T) {
	assert.Equal(t, 3, RoleProgrammerAdmin.Rank())
	assert.Equal(t, 2, RoleAdmin.Rank())
	assert.Equal(t, 1, RoleSEO.Rank())
	assert.Equal(t, 1, RoleSales.Rank())
	assert.Equal(t, 0, AdminRole("ghost").Rank())
}

func TestCanManage(t *testing.T) {
	// Programmer admins manage everyone, including each other.
	assert.True(t, RoleProgrammerAdmin.CanManage(RoleProgrammerAdmin))
	assert.True(t, RoleProgrammerAdmin.CanManage(RoleAdmin))
	assert.True(t, RoleProgrammerAdmin.CanManage(RoleSales))

	// Admins manage only the tier strictly below them.
	assert.True(t, RoleAdmin.CanManage(RoleSEO))
	assert.True(t, RoleAdmin.CanManage(RoleSales))
	assert.False(t, RoleAdmin.CanManage(RoleAdmin))
	assert.False(t, RoleAdmin.CanManage(RoleProgrammerAdmin))

	// Bottom tiers manage nobody.
	assert.False(t, RoleSEO.CanManage(RoleSales))
	assert.False(t, RoleSales.CanManage(RoleSales))
}

func TestCanAssign(t *testing.T) {
	// Only programmer admins hand out the programmer admin role.
	assert.True(t, RoleProgrammerAdmin.CanAssign(RoleProgrammerAdmin))
	assert.False(t, RoleAdmin.CanAssign(RoleProgrammerAdmin))

	assert.True(t, RoleAdmin.CanAssign(RoleSEO))
	assert.True(t, RoleAdmin.CanAssign(RoleSales))
	assert.False(t, RoleAdmin.CanAssign(RoleAdmin))
	assert.False(t, RoleSales.CanAssign(RoleSales))
}

func TestValidAndLabel(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, r.Valid())
		assert.NotEmpty(t, r.Label())
	}
	assert.False(t, AdminRole("superuser").Valid())
}
