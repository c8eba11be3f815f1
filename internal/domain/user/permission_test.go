package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionSettingManage, true},
		{RoleManager, PermissionSettingManage, false},
		{RoleManager, PermissionShiftManage, true},
		{RoleManager, PermissionPayrollCompute, true},
		{RoleEmployee, PermissionTimeLogOwn, true},
		{RoleEmployee, PermissionShiftManage, false},
		{RoleEmployee, PermissionPayrollCompute, false},
		{Role("owner"), PermissionTimeLogOwn, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "%s/%s", c.role, c.permission)
	}
}

func TestAdminHoldsEveryPermission(t *testing.T) {
	for role, perms := range RolePermissions {
		for _, p := range perms {
			assert.True(t, HasPermission(RoleAdmin, p), "admin lacks %s granted to %s", p, role)
		}
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("manager")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, r)

	_, ok = ParseRole("Admin")
	assert.False(t, ok)
}

func TestIdentity_Can(t *testing.T) {
	id := Identity{EmployeeID: "e1", Role: RoleEmployee}
	assert.True(t, id.Can(PermissionTimeOffRequest))
	assert.False(t, id.Can(PermissionTimeOffApprove))
}
