package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionPayrollProcess, true},
		{RoleHR, PermissionLeaveApprove, true},
		{RoleHR, PermissionUserManage, false},
		{RoleEmployee, PermissionLeaveCreate, true},
		{RoleEmployee, PermissionLeaveApprove, false},
		{RoleEmployee, PermissionPayrollProcess, false},
		{Role("guest"), PermissionViewOwnProfile, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasPermission(tt.role, tt.perm), "%s/%s", tt.role, tt.perm)
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("hr")
	assert.NoError(t, err)
	assert.Equal(t, RoleHR, r)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
