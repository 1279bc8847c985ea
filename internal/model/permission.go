package model

// Permission represents a string code for a specific platform capability.
// The set is closed: every UI action or data view the frontend gates maps to
// exactly one of these keys.
type Permission string

const (
	// ─── Departments ───────────────────────────────────────────────────

	// PermissionViewDepartments allows viewing department lists and details.
	PermissionViewDepartments Permission = "view_departments"

	// PermissionCreateDepartments allows creating departments.
	PermissionCreateDepartments Permission = "create_departments"

	// PermissionEditDepartments allows updating department details.
	PermissionEditDepartments Permission = "edit_departments"

	// PermissionDeleteDepartments allows deleting departments.
	PermissionDeleteDepartments Permission = "delete_departments"

	// ─── Classes ───────────────────────────────────────────────────────

	// PermissionViewClasses allows viewing class lists and details.
	PermissionViewClasses Permission = "view_classes"

	// PermissionCreateClasses allows creating classes.
	PermissionCreateClasses Permission = "create_classes"

	// PermissionEditClasses allows updating classes.
	PermissionEditClasses Permission = "edit_classes"

	// PermissionDeleteClasses allows deleting classes.
	PermissionDeleteClasses Permission = "delete_classes"

	// ─── Users ─────────────────────────────────────────────────────────

	// PermissionViewUsers allows viewing user accounts.
	PermissionViewUsers Permission = "view_users"

	// PermissionCreateUsers allows creating user accounts.
	PermissionCreateUsers Permission = "create_users"

	// PermissionEditUsers allows updating user accounts.
	PermissionEditUsers Permission = "edit_users"

	// PermissionDeleteUsers allows deleting user accounts.
	PermissionDeleteUsers Permission = "delete_users"

	// PermissionAssignRoles allows assigning platform roles to users.
	PermissionAssignRoles Permission = "assign_roles"

	// PermissionManageRoles allows administering the role catalog itself.
	PermissionManageRoles Permission = "manage_roles"

	// ─── Subjects ──────────────────────────────────────────────────────

	// PermissionViewSubjects allows viewing subjects.
	PermissionViewSubjects Permission = "view_subjects"

	// PermissionCreateSubjects allows creating subjects.
	PermissionCreateSubjects Permission = "create_subjects"

	// PermissionEditSubjects allows updating subjects.
	PermissionEditSubjects Permission = "edit_subjects"

	// PermissionDeleteSubjects allows deleting subjects.
	PermissionDeleteSubjects Permission = "delete_subjects"

	// PermissionAssignSubjects allows assigning subjects to teachers.
	PermissionAssignSubjects Permission = "assign_subjects"

	// ─── Exams ─────────────────────────────────────────────────────────

	// PermissionViewExams allows viewing exam lists and details.
	PermissionViewExams Permission = "view_exams"

	// PermissionCreateExams allows creating exams.
	PermissionCreateExams Permission = "create_exams"

	// PermissionEditExams allows updating exams.
	PermissionEditExams Permission = "edit_exams"

	// PermissionDeleteExams allows deleting exams.
	PermissionDeleteExams Permission = "delete_exams"

	// PermissionScheduleExams allows scheduling exam sittings.
	PermissionScheduleExams Permission = "schedule_exams"

	// PermissionTakeExams allows sitting an exam as a candidate.
	PermissionTakeExams Permission = "take_exams"

	// PermissionGradeExams allows grading submitted exams.
	PermissionGradeExams Permission = "grade_exams"

	// PermissionViewResults allows viewing exam results.
	PermissionViewResults Permission = "view_results"

	// PermissionPublishResults allows releasing results to students.
	PermissionPublishResults Permission = "publish_results"

	// ─── Question banks ────────────────────────────────────────────────

	// PermissionViewQuestionBanks allows viewing question banks.
	PermissionViewQuestionBanks Permission = "view_question_banks"

	// PermissionCreateQuestionBanks allows creating question banks.
	PermissionCreateQuestionBanks Permission = "create_question_banks"

	// PermissionEditQuestionBanks allows updating question banks.
	PermissionEditQuestionBanks Permission = "edit_question_banks"

	// PermissionDeleteQuestionBanks allows deleting question banks.
	PermissionDeleteQuestionBanks Permission = "delete_question_banks"

	// ─── CO/PO outcome mapping ─────────────────────────────────────────

	// PermissionViewCOPO allows viewing course/program outcome definitions.
	PermissionViewCOPO Permission = "view_co_po"

	// PermissionDefineCOPO allows defining course and program outcomes.
	PermissionDefineCOPO Permission = "define_co_po"

	// PermissionMapCOPO allows mapping course outcomes to program outcomes.
	PermissionMapCOPO Permission = "map_co_po"

	// PermissionViewAttainment allows viewing outcome attainment reports.
	PermissionViewAttainment Permission = "view_attainment"

	// ─── Analytics ─────────────────────────────────────────────────────

	// PermissionViewAnalytics allows viewing institution-level analytics.
	PermissionViewAnalytics Permission = "view_analytics"

	// PermissionViewDeptAnalytics allows viewing department analytics.
	PermissionViewDeptAnalytics Permission = "view_dept_analytics"

	// PermissionViewClassAnalytics allows viewing class analytics.
	PermissionViewClassAnalytics Permission = "view_class_analytics"

	// PermissionExportReports allows exporting analytics reports.
	PermissionExportReports Permission = "export_reports"

	// ─── Bulk operations ───────────────────────────────────────────────

	// PermissionBulkUserUpload allows bulk-uploading user accounts.
	PermissionBulkUserUpload Permission = "bulk_user_upload"

	// PermissionBulkQuestionUpload allows bulk-uploading questions.
	PermissionBulkQuestionUpload Permission = "bulk_question_upload"

	// PermissionDownloadTemplates allows downloading bulk-upload templates.
	PermissionDownloadTemplates Permission = "download_templates"

	// ─── Profile ───────────────────────────────────────────────────────

	// PermissionViewProfile allows viewing a user profile.
	PermissionViewProfile Permission = "view_profile"

	// PermissionEditProfile allows editing a user profile.
	PermissionEditProfile Permission = "edit_profile"

	// PermissionChangePassword allows changing the account password.
	PermissionChangePassword Permission = "change_password"

	// ─── Notifications ─────────────────────────────────────────────────

	// PermissionViewNotifications allows viewing notifications.
	PermissionViewNotifications Permission = "view_notifications"

	// PermissionSendNotifications allows sending notifications.
	PermissionSendNotifications Permission = "send_notifications"

	// PermissionManageNotifications allows administering notification rules.
	PermissionManageNotifications Permission = "manage_notifications"
)

// AllPermissions is a slice of all available permissions, grouped by domain
// area. Iteration over this slice defines the canonical permission order for
// API responses and exports.
var AllPermissions = []Permission{
	PermissionViewDepartments,
	PermissionCreateDepartments,
	PermissionEditDepartments,
	PermissionDeleteDepartments,
	PermissionViewClasses,
	PermissionCreateClasses,
	PermissionEditClasses,
	PermissionDeleteClasses,
	PermissionViewUsers,
	PermissionCreateUsers,
	PermissionEditUsers,
	PermissionDeleteUsers,
	PermissionAssignRoles,
	PermissionManageRoles,
	PermissionViewSubjects,
	PermissionCreateSubjects,
	PermissionEditSubjects,
	PermissionDeleteSubjects,
	PermissionAssignSubjects,
	PermissionViewExams,
	PermissionCreateExams,
	PermissionEditExams,
	PermissionDeleteExams,
	PermissionScheduleExams,
	PermissionTakeExams,
	PermissionGradeExams,
	PermissionViewResults,
	PermissionPublishResults,
	PermissionViewQuestionBanks,
	PermissionCreateQuestionBanks,
	PermissionEditQuestionBanks,
	PermissionDeleteQuestionBanks,
	PermissionViewCOPO,
	PermissionDefineCOPO,
	PermissionMapCOPO,
	PermissionViewAttainment,
	PermissionViewAnalytics,
	PermissionViewDeptAnalytics,
	PermissionViewClassAnalytics,
	PermissionExportReports,
	PermissionBulkUserUpload,
	PermissionBulkQuestionUpload,
	PermissionDownloadTemplates,
	PermissionViewProfile,
	PermissionEditProfile,
	PermissionChangePassword,
	PermissionViewNotifications,
	PermissionSendNotifications,
	PermissionManageNotifications,
}

// ParsePermission validates a raw permission key against the closed set.
func ParsePermission(raw string) (Permission, bool) {
	for _, p := range AllPermissions {
		if Permission(raw) == p {
			return p, true
		}
	}
	return "", false
}
