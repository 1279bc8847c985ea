package authz

import "github.com/acadion/acadion-access/internal/model"

// NavEntry is one candidate entry of the frontend navigation menu. An entry
// is shown to a role when the role holds at least one of the Required
// permissions (OR semantics).
type NavEntry struct {
	Key      string             `json:"key"`
	Label    string             `json:"label"`
	Path     string             `json:"path"`
	Required []model.Permission `json:"required"`
}

// Widget is one candidate dashboard widget, filtered the same way as
// navigation entries.
type Widget struct {
	Key      string             `json:"key"`
	Title    string             `json:"title"`
	Required []model.Permission `json:"required"`
}

// navCandidates is the full menu in declaration order. Filtering preserves
// this order; nothing sorts.
var navCandidates = []NavEntry{
	{
		Key:      "dashboard",
		Label:    "Dashboard",
		Path:     "/dashboard",
		Required: []model.Permission{model.PermissionViewProfile},
	},
	{
		Key:      "departments",
		Label:    "Departments",
		Path:     "/departments",
		Required: []model.Permission{model.PermissionViewDepartments},
	},
	{
		Key:      "classes",
		Label:    "Classes",
		Path:     "/classes",
		Required: []model.Permission{model.PermissionViewClasses},
	},
	{
		Key:      "subjects",
		Label:    "Subjects",
		Path:     "/subjects",
		Required: []model.Permission{model.PermissionViewSubjects},
	},
	{
		Key:      "users",
		Label:    "Users",
		Path:     "/users",
		Required: []model.Permission{model.PermissionViewUsers},
	},
	{
		Key:      "exams",
		Label:    "Exams",
		Path:     "/exams",
		Required: []model.Permission{model.PermissionViewExams, model.PermissionTakeExams},
	},
	{
		Key:      "question-banks",
		Label:    "Question Banks",
		Path:     "/question-banks",
		Required: []model.Permission{model.PermissionViewQuestionBanks},
	},
	{
		Key:      "co-po",
		Label:    "CO/PO Mapping",
		Path:     "/co-po",
		Required: []model.Permission{model.PermissionViewCOPO, model.PermissionMapCOPO},
	},
	{
		Key:   "analytics",
		Label: "Analytics",
		Path:  "/analytics",
		Required: []model.Permission{
			model.PermissionViewAnalytics,
			model.PermissionViewDeptAnalytics,
			model.PermissionViewClassAnalytics,
		},
	},
	{
		Key:      "bulk",
		Label:    "Bulk Operations",
		Path:     "/bulk",
		Required: []model.Permission{model.PermissionBulkUserUpload, model.PermissionBulkQuestionUpload},
	},
	{
		Key:      "notifications",
		Label:    "Notifications",
		Path:     "/notifications",
		Required: []model.Permission{model.PermissionViewNotifications},
	},
	{
		Key:      "profile",
		Label:    "Profile",
		Path:     "/profile",
		Required: []model.Permission{model.PermissionViewProfile},
	},
}

// widgetCandidates is the full dashboard widget catalog in declaration order.
var widgetCandidates = []Widget{
	{
		Key:      "department_overview",
		Title:    "Department Overview",
		Required: []model.Permission{model.PermissionViewAnalytics, model.PermissionViewDeptAnalytics},
	},
	{
		Key:      "class_performance",
		Title:    "Class Performance",
		Required: []model.Permission{model.PermissionViewClassAnalytics},
	},
	{
		Key:      "upcoming_exams",
		Title:    "Upcoming Exams",
		Required: []model.Permission{model.PermissionViewExams, model.PermissionTakeExams},
	},
	{
		Key:      "pending_grading",
		Title:    "Pending Grading",
		Required: []model.Permission{model.PermissionGradeExams},
	},
	{
		Key:      "my_results",
		Title:    "My Results",
		Required: []model.Permission{model.PermissionViewResults},
	},
	{
		Key:      "attainment_summary",
		Title:    "CO/PO Attainment",
		Required: []model.Permission{model.PermissionViewAttainment},
	},
	{
		Key:      "user_activity",
		Title:    "User Activity",
		Required: []model.Permission{model.PermissionViewUsers},
	},
	{
		Key:      "question_bank_usage",
		Title:    "Question Bank Usage",
		Required: []model.Permission{model.PermissionViewQuestionBanks},
	},
	{
		Key:      "recent_notifications",
		Title:    "Recent Notifications",
		Required: []model.Permission{model.PermissionViewNotifications},
	},
}

// NavigationFor returns the navigation entries visible to a role, in
// declaration order. An unknown role simply gets an empty menu.
func NavigationFor(role model.Role) []NavEntry {
	out := make([]NavEntry, 0, len(navCandidates))
	for _, entry := range navCandidates {
		if anyGranted(role, entry.Required) {
			out = append(out, entry)
		}
	}
	return out
}

// WidgetsFor returns the dashboard widgets visible to a role, in declaration
// order.
func WidgetsFor(role model.Role) []Widget {
	out := make([]Widget, 0, len(widgetCandidates))
	for _, w := range widgetCandidates {
		if anyGranted(role, w.Required) {
			out = append(out, w)
		}
	}
	return out
}

// NavigationCatalog returns a copy of the full, unfiltered menu in
// declaration order.
func NavigationCatalog() []NavEntry {
	out := make([]NavEntry, len(navCandidates))
	copy(out, navCandidates)
	return out
}

// WidgetCatalog returns a copy of the full, unfiltered widget list in
// declaration order.
func WidgetCatalog() []Widget {
	out := make([]Widget, len(widgetCandidates))
	copy(out, widgetCandidates)
	return out
}

func anyGranted(role model.Role, perms []model.Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}
