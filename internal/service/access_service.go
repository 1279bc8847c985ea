package service

import (
	"github.com/acadion/acadion-access/internal/authz"
	"github.com/acadion/acadion-access/internal/model"
	"github.com/rs/zerolog"
)

// GrantSummary is the full access picture for one authenticated caller.
type GrantSummary struct {
	Role         model.Role                       `json:"role"`
	DepartmentID int                              `json:"department_id,omitempty"`
	Scopes       map[model.Permission]model.Scope `json:"scopes"`
	Granted      []model.Permission               `json:"granted"`
}

// PermissionCheck is the result of resolving a single permission for a role.
type PermissionCheck struct {
	Permission model.Permission `json:"permission"`
	Allowed    bool             `json:"allowed"`
	Scope      model.Scope      `json:"scope"`
}

// AccessService assembles resolver results into the payload shapes the
// frontend consumes.
type AccessService struct {
	log zerolog.Logger
}

// NewAccessService creates a new AccessService.
func NewAccessService(log zerolog.Logger) *AccessService {
	return &AccessService{
		log: log.With().Str("component", "access_service").Logger(),
	}
}

// Summary builds the caller's grant summary. Granted follows the canonical
// permission order so repeated calls return identical payloads.
func (s *AccessService) Summary(role model.Role, departmentID int) *GrantSummary {
	granted := make([]model.Permission, 0, len(model.AllPermissions))
	for _, perm := range model.AllPermissions {
		if authz.HasPermission(role, perm) {
			granted = append(granted, perm)
		}
	}

	return &GrantSummary{
		Role:         role,
		DepartmentID: departmentID,
		Scopes:       authz.Grants(role),
		Granted:      granted,
	}
}

// Check resolves a batch of permission keys for a role, preserving request
// order.
func (s *AccessService) Check(role model.Role, perms []model.Permission) []PermissionCheck {
	results := make([]PermissionCheck, 0, len(perms))
	for _, perm := range perms {
		results = append(results, PermissionCheck{
			Permission: perm,
			Allowed:    authz.HasPermission(role, perm),
			Scope:      authz.ScopeFor(role, perm),
		})
	}
	return results
}

// CanAccessResource applies the department-level access rule for a caller
// against a target resource's department.
func (s *AccessService) CanAccessResource(role model.Role, resourceDeptID, callerDeptID int) bool {
	allowed := authz.CanAccessResource(role, resourceDeptID, callerDeptID)
	if !allowed {
		s.log.Debug().
			Str("role", string(role)).
			Int("resource_dept", resourceDeptID).
			Int("caller_dept", callerDeptID).
			Msg("Resource access denied")
	}
	return allowed
}

// Navigation returns the role's visible navigation entries.
func (s *AccessService) Navigation(role model.Role) []authz.NavEntry {
	return authz.NavigationFor(role)
}

// Widgets returns the role's visible dashboard widgets.
func (s *AccessService) Widgets(role model.Role) []authz.Widget {
	return authz.WidgetsFor(role)
}

// Matrix returns a copy of the entire authorization table for audit views.
func (s *AccessService) Matrix() map[model.Role]map[model.Permission]model.Scope {
	return authz.Matrix()
}
