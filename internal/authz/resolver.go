package authz

import "github.com/acadion/acadion-access/internal/model"

// ScopeFor returns the matrix scope for a (role, permission) pair. Totality
// over the closed enums is guaranteed at init, so a miss can only mean the
// caller passed a value from outside the enums; that denies by default
// rather than granting anything.
func ScopeFor(role model.Role, perm model.Permission) model.Scope {
	grants, ok := matrix[role]
	if !ok {
		return model.ScopeNoAccess
	}
	scope, ok := grants[perm]
	if !ok {
		return model.ScopeNoAccess
	}
	return scope
}

// HasPermission reports whether a role may exercise a permission at all,
// i.e. whether its scope is anything other than the denial sentinel.
func HasPermission(role model.Role, perm model.Permission) bool {
	return ScopeFor(role, perm).Granted()
}

// CanAccessResource applies the coarse department-level access rule:
// admins reach everything, HODs and teachers only resources of their own
// department, students everything (ownership checks are the caller's
// responsibility). This rule is deliberately independent of the permission
// matrix — consumers layer the two checks at different call sites, and they
// must stay separate policies.
func CanAccessResource(role model.Role, resourceDeptID, callerDeptID int) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleHOD, model.RoleTeacher:
		return resourceDeptID == callerDeptID
	case model.RoleStudent:
		return true
	default:
		return false
	}
}
