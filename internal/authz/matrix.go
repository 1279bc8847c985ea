// Package authz holds the platform's static authorization table and the pure
// lookup functions over it. The table is a compile-time constant with
// process-wide lifetime; nothing here blocks, fails, or mutates shared state,
// so every function is safe to call from any goroutine without
// synchronization.
package authz

import (
	"fmt"

	"github.com/acadion/acadion-access/internal/model"
)

// matrix is the full (role, permission) -> scope table. It must be total
// over model.AllRoles x model.AllPermissions; init verifies that and panics
// on a gap, because a missing cell is a programming error, not a runtime
// condition — a silent default could under- or over-grant access.
var matrix = map[model.Role]map[model.Permission]model.Scope{
	model.RoleAdmin: {
		model.PermissionViewDepartments:   model.ScopeFull,
		model.PermissionCreateDepartments: model.ScopeFull,
		model.PermissionEditDepartments:   model.ScopeFull,
		model.PermissionDeleteDepartments: model.ScopeFull,

		model.PermissionViewClasses:   model.ScopeFull,
		model.PermissionCreateClasses: model.ScopeFull,
		model.PermissionEditClasses:   model.ScopeFull,
		model.PermissionDeleteClasses: model.ScopeFull,

		model.PermissionViewUsers:   model.ScopeFull,
		model.PermissionCreateUsers: model.ScopeFull,
		model.PermissionEditUsers:   model.ScopeFull,
		model.PermissionDeleteUsers: model.ScopeFull,
		model.PermissionAssignRoles: model.ScopeFull,
		model.PermissionManageRoles: model.ScopeFull,

		model.PermissionViewSubjects:   model.ScopeFull,
		model.PermissionCreateSubjects: model.ScopeFull,
		model.PermissionEditSubjects:   model.ScopeFull,
		model.PermissionDeleteSubjects: model.ScopeFull,
		model.PermissionAssignSubjects: model.ScopeFull,

		model.PermissionViewExams:     model.ScopeFull,
		model.PermissionCreateExams:   model.ScopeFull,
		model.PermissionEditExams:     model.ScopeFull,
		model.PermissionDeleteExams:   model.ScopeFull,
		model.PermissionScheduleExams: model.ScopeFull,
		// Admins administer exams but never sit them as candidates.
		model.PermissionTakeExams:      model.ScopeNoAccess,
		model.PermissionGradeExams:     model.ScopeFull,
		model.PermissionViewResults:    model.ScopeFull,
		model.PermissionPublishResults: model.ScopeFull,

		model.PermissionViewQuestionBanks:   model.ScopeFull,
		model.PermissionCreateQuestionBanks: model.ScopeFull,
		model.PermissionEditQuestionBanks:   model.ScopeFull,
		model.PermissionDeleteQuestionBanks: model.ScopeFull,

		model.PermissionViewCOPO:       model.ScopeFull,
		model.PermissionDefineCOPO:     model.ScopeFull,
		model.PermissionMapCOPO:        model.ScopeFull,
		model.PermissionViewAttainment: model.ScopeFull,

		model.PermissionViewAnalytics:      model.ScopeFull,
		model.PermissionViewDeptAnalytics:  model.ScopeFull,
		model.PermissionViewClassAnalytics: model.ScopeFull,
		model.PermissionExportReports:      model.ScopeFull,

		model.PermissionBulkUserUpload:     model.ScopeFull,
		model.PermissionBulkQuestionUpload: model.ScopeFull,
		model.PermissionDownloadTemplates:  model.ScopeFull,

		model.PermissionViewProfile:    model.ScopeFull,
		model.PermissionEditProfile:    model.ScopeFull,
		model.PermissionChangePassword: model.ScopeFull,

		model.PermissionViewNotifications:   model.ScopeFull,
		model.PermissionSendNotifications:   model.ScopeFull,
		model.PermissionManageNotifications: model.ScopeFull,
	},

	model.RoleHOD: {
		model.PermissionViewDepartments:   model.ScopeOwnDept,
		model.PermissionCreateDepartments: model.ScopeNoAccess,
		model.PermissionEditDepartments:   model.ScopeOwnDept,
		model.PermissionDeleteDepartments: model.ScopeNoAccess,

		model.PermissionViewClasses:   model.ScopeDeptClasses,
		model.PermissionCreateClasses: model.ScopeDeptClasses,
		model.PermissionEditClasses:   model.ScopeDeptClasses,
		model.PermissionDeleteClasses: model.ScopeDeptClasses,

		model.PermissionViewUsers:   model.ScopeDeptUsers,
		model.PermissionCreateUsers: model.ScopeDeptUsers,
		model.PermissionEditUsers:   model.ScopeDeptUsers,
		model.PermissionDeleteUsers: model.ScopeNoAccess,
		model.PermissionAssignRoles: model.ScopeDeptUsers,
		model.PermissionManageRoles: model.ScopeNoAccess,

		model.PermissionViewSubjects:   model.ScopeDeptSubjects,
		model.PermissionCreateSubjects: model.ScopeDeptSubjects,
		model.PermissionEditSubjects:   model.ScopeDeptSubjects,
		model.PermissionDeleteSubjects: model.ScopeDeptSubjects,
		model.PermissionAssignSubjects: model.ScopeDeptSubjects,

		model.PermissionViewExams:      model.ScopeDeptExams,
		model.PermissionCreateExams:    model.ScopeDeptExams,
		model.PermissionEditExams:      model.ScopeDeptExams,
		model.PermissionDeleteExams:    model.ScopeDeptExams,
		model.PermissionScheduleExams:  model.ScopeDeptExams,
		model.PermissionTakeExams:      model.ScopeNoAccess,
		model.PermissionGradeExams:     model.ScopeDeptExams,
		model.PermissionViewResults:    model.ScopeDeptExams,
		model.PermissionPublishResults: model.ScopeDeptExams,

		model.PermissionViewQuestionBanks:   model.ScopeDeptSubjects,
		model.PermissionCreateQuestionBanks: model.ScopeOwnBanks,
		model.PermissionEditQuestionBanks:   model.ScopeOwnBanks,
		model.PermissionDeleteQuestionBanks: model.ScopeOwnBanks,

		model.PermissionViewCOPO:       model.ScopeDeptSubjects,
		model.PermissionDefineCOPO:     model.ScopeDeptSubjects,
		model.PermissionMapCOPO:        model.ScopeDeptSubjects,
		model.PermissionViewAttainment: model.ScopeDeptSubjects,

		model.PermissionViewAnalytics:      model.ScopeOwnDept,
		model.PermissionViewDeptAnalytics:  model.ScopeOwnDept,
		model.PermissionViewClassAnalytics: model.ScopeDeptClasses,
		model.PermissionExportReports:      model.ScopeOwnDept,

		model.PermissionBulkUserUpload:     model.ScopeDeptUsers,
		model.PermissionBulkQuestionUpload: model.ScopeOwnBanks,
		model.PermissionDownloadTemplates:  model.ScopeFull,

		model.PermissionViewProfile:    model.ScopeOwnProfile,
		model.PermissionEditProfile:    model.ScopeOwnProfile,
		model.PermissionChangePassword: model.ScopeOwnProfile,

		model.PermissionViewNotifications:   model.ScopeFull,
		model.PermissionSendNotifications:   model.ScopeOwnDept,
		model.PermissionManageNotifications: model.ScopeNoAccess,
	},

	model.RoleTeacher: {
		model.PermissionViewDepartments:   model.ScopeViewOnly,
		model.PermissionCreateDepartments: model.ScopeNoAccess,
		model.PermissionEditDepartments:   model.ScopeNoAccess,
		model.PermissionDeleteDepartments: model.ScopeNoAccess,

		model.PermissionViewClasses:   model.ScopeAssignedClasses,
		model.PermissionCreateClasses: model.ScopeNoAccess,
		model.PermissionEditClasses:   model.ScopeNoAccess,
		model.PermissionDeleteClasses: model.ScopeNoAccess,

		model.PermissionViewUsers:   model.ScopeAssignedClasses,
		model.PermissionCreateUsers: model.ScopeNoAccess,
		model.PermissionEditUsers:   model.ScopeNoAccess,
		model.PermissionDeleteUsers: model.ScopeNoAccess,
		model.PermissionAssignRoles: model.ScopeNoAccess,
		model.PermissionManageRoles: model.ScopeNoAccess,

		model.PermissionViewSubjects:   model.ScopeAssignedSubjects,
		model.PermissionCreateSubjects: model.ScopeNoAccess,
		model.PermissionEditSubjects:   model.ScopeNoAccess,
		model.PermissionDeleteSubjects: model.ScopeNoAccess,
		model.PermissionAssignSubjects: model.ScopeNoAccess,

		model.PermissionViewExams:      model.ScopeAssignedSubjects,
		model.PermissionCreateExams:    model.ScopeAssignedSubjects,
		model.PermissionEditExams:      model.ScopeOwnExams,
		model.PermissionDeleteExams:    model.ScopeOwnExams,
		model.PermissionScheduleExams:  model.ScopeOwnExams,
		model.PermissionTakeExams:      model.ScopeNoAccess,
		model.PermissionGradeExams:     model.ScopeOwnExams,
		model.PermissionViewResults:    model.ScopeAssignedClasses,
		model.PermissionPublishResults: model.ScopeOwnExams,

		model.PermissionViewQuestionBanks:   model.ScopeAssignedSubjects,
		model.PermissionCreateQuestionBanks: model.ScopeOwnBanks,
		model.PermissionEditQuestionBanks:   model.ScopeOwnBanks,
		model.PermissionDeleteQuestionBanks: model.ScopeOwnBanks,

		model.PermissionViewCOPO:       model.ScopeAssignedSubjects,
		model.PermissionDefineCOPO:     model.ScopeNoAccess,
		model.PermissionMapCOPO:        model.ScopeAssignedSubjects,
		model.PermissionViewAttainment: model.ScopeAssignedSubjects,

		model.PermissionViewAnalytics:      model.ScopeNoAccess,
		model.PermissionViewDeptAnalytics:  model.ScopeNoAccess,
		model.PermissionViewClassAnalytics: model.ScopeAssignedClasses,
		model.PermissionExportReports:      model.ScopeAssignedClasses,

		model.PermissionBulkUserUpload:     model.ScopeNoAccess,
		model.PermissionBulkQuestionUpload: model.ScopeOwnBanks,
		model.PermissionDownloadTemplates:  model.ScopeFull,

		model.PermissionViewProfile:    model.ScopeOwnProfile,
		model.PermissionEditProfile:    model.ScopeOwnProfile,
		model.PermissionChangePassword: model.ScopeOwnProfile,

		model.PermissionViewNotifications:   model.ScopeFull,
		model.PermissionSendNotifications:   model.ScopeAssignedClasses,
		model.PermissionManageNotifications: model.ScopeNoAccess,
	},

	model.RoleStudent: {
		model.PermissionViewDepartments:   model.ScopeViewOnly,
		model.PermissionCreateDepartments: model.ScopeNoAccess,
		model.PermissionEditDepartments:   model.ScopeNoAccess,
		model.PermissionDeleteDepartments: model.ScopeNoAccess,

		model.PermissionViewClasses:   model.ScopeOwnClass,
		model.PermissionCreateClasses: model.ScopeNoAccess,
		model.PermissionEditClasses:   model.ScopeNoAccess,
		model.PermissionDeleteClasses: model.ScopeNoAccess,

		model.PermissionViewUsers:   model.ScopeNoAccess,
		model.PermissionCreateUsers: model.ScopeNoAccess,
		model.PermissionEditUsers:   model.ScopeNoAccess,
		model.PermissionDeleteUsers: model.ScopeNoAccess,
		model.PermissionAssignRoles: model.ScopeNoAccess,
		model.PermissionManageRoles: model.ScopeNoAccess,

		model.PermissionViewSubjects:   model.ScopeEnrolledSubjects,
		model.PermissionCreateSubjects: model.ScopeNoAccess,
		model.PermissionEditSubjects:   model.ScopeNoAccess,
		model.PermissionDeleteSubjects: model.ScopeNoAccess,
		model.PermissionAssignSubjects: model.ScopeNoAccess,

		model.PermissionViewExams:      model.ScopeAssignedExams,
		model.PermissionCreateExams:    model.ScopeNoAccess,
		model.PermissionEditExams:      model.ScopeNoAccess,
		model.PermissionDeleteExams:    model.ScopeNoAccess,
		model.PermissionScheduleExams:  model.ScopeNoAccess,
		model.PermissionTakeExams:      model.ScopeAssignedExams,
		model.PermissionGradeExams:     model.ScopeNoAccess,
		model.PermissionViewResults:    model.ScopeOwnResults,
		model.PermissionPublishResults: model.ScopeNoAccess,

		model.PermissionViewQuestionBanks:   model.ScopeNoAccess,
		model.PermissionCreateQuestionBanks: model.ScopeNoAccess,
		model.PermissionEditQuestionBanks:   model.ScopeNoAccess,
		model.PermissionDeleteQuestionBanks: model.ScopeNoAccess,

		model.PermissionViewCOPO:       model.ScopeEnrolledSubjects,
		model.PermissionDefineCOPO:     model.ScopeNoAccess,
		model.PermissionMapCOPO:        model.ScopeNoAccess,
		model.PermissionViewAttainment: model.ScopeOwnResults,

		model.PermissionViewAnalytics:      model.ScopeNoAccess,
		model.PermissionViewDeptAnalytics:  model.ScopeNoAccess,
		model.PermissionViewClassAnalytics: model.ScopeNoAccess,
		model.PermissionExportReports:      model.ScopeNoAccess,

		model.PermissionBulkUserUpload:     model.ScopeNoAccess,
		model.PermissionBulkQuestionUpload: model.ScopeNoAccess,
		model.PermissionDownloadTemplates:  model.ScopeNoAccess,

		model.PermissionViewProfile:    model.ScopeOwnProfile,
		model.PermissionEditProfile:    model.ScopeOwnProfile,
		model.PermissionChangePassword: model.ScopeOwnProfile,

		model.PermissionViewNotifications:   model.ScopeReceiveOnly,
		model.PermissionSendNotifications:   model.ScopeNoAccess,
		model.PermissionManageNotifications: model.ScopeNoAccess,
	},
}

func init() {
	if err := verifyTotality(); err != nil {
		panic(err)
	}
}

// verifyTotality checks that the matrix defines exactly one scope for every
// (role, permission) pair in the closed enums.
func verifyTotality() error {
	for _, role := range model.AllRoles {
		grants, ok := matrix[role]
		if !ok {
			return fmt.Errorf("authz: matrix has no row for role %q", role)
		}
		if len(grants) != len(model.AllPermissions) {
			return fmt.Errorf("authz: matrix row for role %q has %d entries, want %d",
				role, len(grants), len(model.AllPermissions))
		}
		for _, perm := range model.AllPermissions {
			if _, ok := grants[perm]; !ok {
				return fmt.Errorf("authz: matrix missing entry for role %q permission %q", role, perm)
			}
		}
	}
	return nil
}

// Grants returns a copy of the full permission -> scope row for a role.
// Unknown roles yield an all-denied row.
func Grants(role model.Role) map[model.Permission]model.Scope {
	out := make(map[model.Permission]model.Scope, len(model.AllPermissions))
	for _, perm := range model.AllPermissions {
		out[perm] = ScopeFor(role, perm)
	}
	return out
}

// Matrix returns a copy of the entire table, keyed by role. Callers may
// mutate the result freely; the underlying table never changes.
func Matrix() map[model.Role]map[model.Permission]model.Scope {
	out := make(map[model.Role]map[model.Permission]model.Scope, len(model.AllRoles))
	for _, role := range model.AllRoles {
		out[role] = Grants(role)
	}
	return out
}
