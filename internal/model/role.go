package model

// Role is one of the closed set of actor categories on the platform.
type Role string

const (
	// RoleAdmin is the institution-wide administrator.
	RoleAdmin Role = "admin"

	// RoleHOD is a Head of Department, a department-scoped administrator.
	RoleHOD Role = "hod"

	// RoleTeacher is teaching staff assigned to classes and subjects.
	RoleTeacher Role = "teacher"

	// RoleStudent is an enrolled student.
	RoleStudent Role = "student"
)

// AllRoles is a slice of all valid roles, in display order.
var AllRoles = []Role{
	RoleAdmin,
	RoleHOD,
	RoleTeacher,
	RoleStudent,
}

// ParseRole validates a raw role value (e.g. a JWT claim) against the closed
// role set. Malformed claims are rejected here, at the boundary, so the
// resolver never sees an unknown role.
func ParseRole(raw string) (Role, bool) {
	for _, r := range AllRoles {
		if Role(raw) == r {
			return r, true
		}
	}
	return "", false
}
