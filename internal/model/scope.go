package model

// Scope describes how broadly a role may exercise a permission. Scopes are
// opaque tags: apart from ScopeNoAccess, which the resolver interprets as a
// denial, their meaning (e.g. "restricted to the caller's department") is
// enforced ad hoc by consumers at their own call sites. This mirrors how the
// platform has always treated scopes and is a known design gap; do not add
// scope interpretation to the resolver.
type Scope string

const (
	// ScopeNoAccess is the denial sentinel. It is the only scope value the
	// resolver machine-interprets.
	ScopeNoAccess Scope = "no_access"

	// ScopeFull grants unrestricted access.
	ScopeFull Scope = "full"

	// ScopeViewOnly grants read-only access.
	ScopeViewOnly Scope = "view_only"

	// ScopeOwnDept restricts access to the caller's own department.
	ScopeOwnDept Scope = "own_dept_only"

	// ScopeDeptClasses restricts access to classes of the caller's department.
	ScopeDeptClasses Scope = "dept_classes_only"

	// ScopeDeptUsers restricts access to users of the caller's department.
	ScopeDeptUsers Scope = "dept_users_only"

	// ScopeDeptSubjects restricts access to subjects of the caller's department.
	ScopeDeptSubjects Scope = "dept_subjects_only"

	// ScopeDeptExams restricts access to exams of the caller's department.
	ScopeDeptExams Scope = "dept_exams_only"

	// ScopeAssignedClasses restricts access to classes assigned to the caller.
	ScopeAssignedClasses Scope = "assigned_classes"

	// ScopeAssignedSubjects restricts access to subjects assigned to the caller.
	ScopeAssignedSubjects Scope = "assigned_subjects"

	// ScopeAssignedExams restricts access to exams assigned to the caller.
	ScopeAssignedExams Scope = "assigned_exams"

	// ScopeOwnExams restricts access to exams authored by the caller.
	ScopeOwnExams Scope = "own_exams"

	// ScopeOwnBanks restricts access to question banks owned by the caller.
	ScopeOwnBanks Scope = "own_banks"

	// ScopeOwnClass restricts access to the caller's own class.
	ScopeOwnClass Scope = "own_class_only"

	// ScopeEnrolledSubjects restricts access to subjects the caller is enrolled in.
	ScopeEnrolledSubjects Scope = "enrolled_subjects"

	// ScopeOwnResults restricts access to the caller's own results.
	ScopeOwnResults Scope = "own_results_only"

	// ScopeOwnProfile restricts access to the caller's own profile.
	ScopeOwnProfile Scope = "own_profile_only"

	// ScopeReceiveOnly grants receipt of notifications without send rights.
	ScopeReceiveOnly Scope = "receive_only"
)

// Granted reports whether the scope represents any level of access.
func (s Scope) Granted() bool {
	return s != ScopeNoAccess
}
