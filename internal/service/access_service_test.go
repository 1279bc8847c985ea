package service

import (
	"testing"

	"github.com/acadion/acadion-access/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	svc := NewAccessService(zerolog.Nop())

	summary := svc.Summary(model.RoleStudent, 3)
	require.NotNil(t, summary)
	assert.Equal(t, model.RoleStudent, summary.Role)
	assert.Equal(t, 3, summary.DepartmentID)
	assert.Len(t, summary.Scopes, len(model.AllPermissions))

	assert.Contains(t, summary.Granted, model.PermissionTakeExams)
	assert.NotContains(t, summary.Granted, model.PermissionBulkUserUpload)

	// Granted follows the canonical permission order.
	idx := map[model.Permission]int{}
	for i, p := range model.AllPermissions {
		idx[p] = i
	}
	for i := 1; i < len(summary.Granted); i++ {
		assert.Less(t, idx[summary.Granted[i-1]], idx[summary.Granted[i]])
	}
}

func TestCheckPreservesRequestOrder(t *testing.T) {
	svc := NewAccessService(zerolog.Nop())

	perms := []model.Permission{
		model.PermissionTakeExams,
		model.PermissionDeleteDepartments,
		model.PermissionViewNotifications,
	}

	results := svc.Check(model.RoleStudent, perms)
	require.Len(t, results, 3)

	assert.Equal(t, model.PermissionTakeExams, results[0].Permission)
	assert.True(t, results[0].Allowed)
	assert.Equal(t, model.ScopeAssignedExams, results[0].Scope)

	assert.Equal(t, model.PermissionDeleteDepartments, results[1].Permission)
	assert.False(t, results[1].Allowed)
	assert.Equal(t, model.ScopeNoAccess, results[1].Scope)

	assert.Equal(t, model.PermissionViewNotifications, results[2].Permission)
	assert.True(t, results[2].Allowed)
	assert.Equal(t, model.ScopeReceiveOnly, results[2].Scope)
}

func TestAccessServiceCanAccessResource(t *testing.T) {
	svc := NewAccessService(zerolog.Nop())

	assert.True(t, svc.CanAccessResource(model.RoleAdmin, 9, 1))
	assert.True(t, svc.CanAccessResource(model.RoleHOD, 1, 1))
	assert.False(t, svc.CanAccessResource(model.RoleHOD, 9, 1))
	assert.True(t, svc.CanAccessResource(model.RoleStudent, 9, 1))
}

func TestNavigationAndWidgetsDelegate(t *testing.T) {
	svc := NewAccessService(zerolog.Nop())

	nav := svc.Navigation(model.RoleStudent)
	assert.NotEmpty(t, nav)

	widgets := svc.Widgets(model.RoleStudent)
	assert.NotEmpty(t, widgets)

	m := svc.Matrix()
	assert.Len(t, m, len(model.AllRoles))
}
