package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acadion/acadion-access/internal/model"
	"github.com/acadion/acadion-access/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withClaims injects claims the way RequireAuth would after validating a
// token, so RBAC can be tested without a token round trip.
func withClaims(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClaims, &service.Claims{Role: role, UserID: 1})
		c.Next()
	}
}

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		perm       model.Permission
		wantStatus int
	}{
		{"admin allowed", model.RoleAdmin, model.PermissionManageRoles, http.StatusOK},
		{"hod denied role management", model.RoleHOD, model.PermissionManageRoles, http.StatusForbidden},
		{"teacher denied department deletion", model.RoleTeacher, model.PermissionDeleteDepartments, http.StatusForbidden},
		{"student allowed exam sitting", model.RoleStudent, model.PermissionTakeExams, http.StatusOK},
		{"admin denied exam sitting", model.RoleAdmin, model.PermissionTakeExams, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/t", withClaims(tt.role), RequirePermission(tt.perm), okHandler)

			w := performRequest(r, http.MethodGet, "/t")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequirePermissionWithoutClaims(t *testing.T) {
	r := gin.New()
	r.GET("/t", RequirePermission(model.PermissionViewClasses), okHandler)

	w := performRequest(r, http.MethodGet, "/t")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAnyPermission(t *testing.T) {
	r := gin.New()
	// Teachers hold bulk_question_upload but not bulk_user_upload; either
	// one should open the route.
	r.GET("/bulk", withClaims(model.RoleTeacher),
		RequireAnyPermission(model.PermissionBulkUserUpload, model.PermissionBulkQuestionUpload),
		okHandler)

	w := performRequest(r, http.MethodGet, "/bulk")
	assert.Equal(t, http.StatusOK, w.Code)

	r2 := gin.New()
	r2.GET("/bulk", withClaims(model.RoleStudent),
		RequireAnyPermission(model.PermissionBulkUserUpload, model.PermissionBulkQuestionUpload),
		okHandler)

	w2 := performRequest(r2, http.MethodGet, "/bulk")
	assert.Equal(t, http.StatusForbidden, w2.Code)
}
