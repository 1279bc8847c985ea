package authz

import (
	"testing"

	"github.com/acadion/acadion-access/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
		perm model.Permission
		want bool
	}{
		{"teacher cannot delete departments", model.RoleTeacher, model.PermissionDeleteDepartments, false},
		{"teacher can view departments", model.RoleTeacher, model.PermissionViewDepartments, true},
		{"hod can create classes", model.RoleHOD, model.PermissionCreateClasses, true},
		{"student can take exams", model.RoleStudent, model.PermissionTakeExams, true},
		{"admin cannot take exams", model.RoleAdmin, model.PermissionTakeExams, false},
		{"student cannot bulk upload users", model.RoleStudent, model.PermissionBulkUserUpload, false},
		{"admin can manage roles", model.RoleAdmin, model.PermissionManageRoles, true},
		{"unknown role denied", model.Role("registrar"), model.PermissionViewClasses, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.perm))
		})
	}
}

func TestScopeFor(t *testing.T) {
	assert.Equal(t, model.ScopeAssignedExams, ScopeFor(model.RoleStudent, model.PermissionTakeExams))
	assert.Equal(t, model.ScopeDeptClasses, ScopeFor(model.RoleHOD, model.PermissionCreateClasses))
	assert.Equal(t, model.ScopeViewOnly, ScopeFor(model.RoleTeacher, model.PermissionViewDepartments))
	assert.Equal(t, model.ScopeReceiveOnly, ScopeFor(model.RoleStudent, model.PermissionViewNotifications))

	// Values outside the closed enums deny by default.
	assert.Equal(t, model.ScopeNoAccess, ScopeFor(model.Role("registrar"), model.PermissionViewClasses))
	assert.Equal(t, model.ScopeNoAccess, ScopeFor(model.RoleAdmin, model.Permission("fly_drones")))
}

func TestCanAccessResource(t *testing.T) {
	tests := []struct {
		name         string
		role         model.Role
		resourceDept int
		callerDept   int
		want         bool
	}{
		{"admin any department", model.RoleAdmin, 7, 3, true},
		{"admin same department", model.RoleAdmin, 3, 3, true},
		{"hod own department", model.RoleHOD, 3, 3, true},
		{"hod other department", model.RoleHOD, 7, 3, false},
		{"teacher own department", model.RoleTeacher, 5, 5, true},
		{"teacher other department", model.RoleTeacher, 5, 6, false},
		{"student any department", model.RoleStudent, 9, 1, true},
		{"unknown role", model.Role("registrar"), 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessResource(tt.role, tt.resourceDept, tt.callerDept))
		})
	}
}

// The matrix and the department rule are layered independently by callers:
// a role can hold a permission yet fail the department check, and vice versa.
func TestPoliciesAreIndependent(t *testing.T) {
	assert.True(t, HasPermission(model.RoleHOD, model.PermissionCreateClasses))
	assert.False(t, CanAccessResource(model.RoleHOD, 2, 1))

	assert.False(t, HasPermission(model.RoleStudent, model.PermissionCreateClasses))
	assert.True(t, CanAccessResource(model.RoleStudent, 2, 1))
}
