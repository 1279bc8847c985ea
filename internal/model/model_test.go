package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		parsed, ok := ParseRole(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}

	_, ok := ParseRole("registrar")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
	_, ok = ParseRole("Admin") // case sensitive
	assert.False(t, ok)
}

func TestParsePermission(t *testing.T) {
	for _, p := range AllPermissions {
		parsed, ok := ParsePermission(string(p))
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}

	_, ok := ParsePermission("launch_rockets")
	assert.False(t, ok)
}

func TestAllPermissionsHasNoDuplicates(t *testing.T) {
	seen := make(map[Permission]bool, len(AllPermissions))
	for _, p := range AllPermissions {
		assert.False(t, seen[p], "duplicate permission %s", p)
		seen[p] = true
	}
}

func TestScopeGranted(t *testing.T) {
	assert.False(t, ScopeNoAccess.Granted())
	assert.True(t, ScopeFull.Granted())
	assert.True(t, ScopeReceiveOnly.Granted())
	assert.True(t, Scope("anything_else").Granted())
}
