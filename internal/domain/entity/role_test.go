package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))

	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, RoleModerator.AtLeast(RoleAdmin))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleModerator.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestPrivilegeOf(t *testing.T) {
	assert.Equal(t, PrivilegeAnonymous, PrivilegeOf(nil))
	assert.Equal(t, PrivilegeUser, PrivilegeOf(&User{Role: RoleUser}))
	assert.Equal(t, PrivilegeModerator, PrivilegeOf(&User{Role: RoleModerator}))
	assert.Equal(t, PrivilegeAdmin, PrivilegeOf(&User{Role: RoleAdmin}))

	// The superuser flag elevates any role to admin privilege.
	assert.Equal(t, PrivilegeAdmin, PrivilegeOf(&User{Role: RoleUser, IsSuperuser: true}))
	assert.Equal(t, PrivilegeAdmin, PrivilegeOf(&User{Role: RoleModerator, IsSuperuser: true}))
}
