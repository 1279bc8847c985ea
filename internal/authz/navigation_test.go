package authz

import (
	"testing"

	"github.com/acadion/acadion-access/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navKeys(entries []NavEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func widgetKeys(widgets []Widget) []string {
	keys := make([]string, 0, len(widgets))
	for _, w := range widgets {
		keys = append(keys, w.Key)
	}
	return keys
}

func TestNavigationForStudent(t *testing.T) {
	keys := navKeys(NavigationFor(model.RoleStudent))

	// Bulk upload is fully denied to students; notifications are granted
	// with a receive_only scope, which still counts as access.
	assert.NotContains(t, keys, "bulk")
	assert.Contains(t, keys, "notifications")
	assert.Contains(t, keys, "exams")
	assert.Contains(t, keys, "profile")
	assert.NotContains(t, keys, "users")
	assert.NotContains(t, keys, "question-banks")
	assert.NotContains(t, keys, "analytics")
}

func TestNavigationForTeacher(t *testing.T) {
	keys := navKeys(NavigationFor(model.RoleTeacher))

	// Teachers reach bulk operations through question upload alone — the
	// filter uses OR semantics over required permissions.
	assert.Contains(t, keys, "bulk")
	assert.Contains(t, keys, "question-banks")
	assert.Contains(t, keys, "analytics")
}

func TestNavigationForAdminIsFullMenu(t *testing.T) {
	assert.Equal(t, navKeys(NavigationCatalog()), navKeys(NavigationFor(model.RoleAdmin)))
}

func TestNavigationForUnknownRoleIsEmpty(t *testing.T) {
	assert.Empty(t, NavigationFor(model.Role("registrar")))
	assert.Empty(t, WidgetsFor(model.Role("registrar")))
}

func TestNavigationIsIdempotentAndOrderStable(t *testing.T) {
	for _, role := range model.AllRoles {
		first := NavigationFor(role)
		second := NavigationFor(role)
		require.Equal(t, first, second, "role %s navigation not stable", role)

		// Order must follow catalog declaration order.
		catalogOrder := map[string]int{}
		for i, e := range NavigationCatalog() {
			catalogOrder[e.Key] = i
		}
		for i := 1; i < len(first); i++ {
			assert.Less(t, catalogOrder[first[i-1].Key], catalogOrder[first[i].Key])
		}
	}
}

func TestWidgetsForRoles(t *testing.T) {
	studentWidgets := widgetKeys(WidgetsFor(model.RoleStudent))
	assert.Contains(t, studentWidgets, "upcoming_exams")
	assert.Contains(t, studentWidgets, "my_results")
	assert.NotContains(t, studentWidgets, "pending_grading")
	assert.NotContains(t, studentWidgets, "user_activity")

	teacherWidgets := widgetKeys(WidgetsFor(model.RoleTeacher))
	assert.Contains(t, teacherWidgets, "pending_grading")
	assert.Contains(t, teacherWidgets, "class_performance")
	assert.NotContains(t, teacherWidgets, "department_overview")

	hodWidgets := widgetKeys(WidgetsFor(model.RoleHOD))
	assert.Contains(t, hodWidgets, "department_overview")

	adminWidgets := widgetKeys(WidgetsFor(model.RoleAdmin))
	assert.Equal(t, widgetKeys(WidgetCatalog()), adminWidgets)
}

func TestWidgetsIdempotent(t *testing.T) {
	for _, role := range model.AllRoles {
		require.Equal(t, WidgetsFor(role), WidgetsFor(role))
	}
}
