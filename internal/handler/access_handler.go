package handler

import (
	"net/http"

	"github.com/acadion/acadion-access/internal/middleware"
	"github.com/acadion/acadion-access/internal/model"
	"github.com/acadion/acadion-access/internal/response"
	"github.com/acadion/acadion-access/internal/service"
	"github.com/acadion/acadion-access/internal/validator"
	"github.com/gin-gonic/gin"
)

// AccessHandler serves permission resolution to the frontend: grant
// summaries, single and batch checks, resource access, navigation and
// dashboard widget lists.
type AccessHandler struct {
	accessService *service.AccessService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(accessService *service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// GetMe godoc
// GET /api/v1/access/me
// Returns the caller's role, department, and full grant map.
func (h *AccessHandler) GetMe(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	summary := h.accessService.Summary(claims.Role, claims.DepartmentID)
	response.Success(c, http.StatusOK, gin.H{"access": summary})
}

// CheckPermission godoc
// GET /api/v1/access/permissions/:permission
// Resolves a single permission key for the caller's role. Unknown keys are
// a client error, not a silent denial.
func (h *AccessHandler) CheckPermission(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	perm, ok := model.ParsePermission(c.Param("permission"))
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPermission)
		return
	}

	results := h.accessService.Check(claims.Role, []model.Permission{perm})
	response.Success(c, http.StatusOK, gin.H{"result": results[0]})
}

// CheckBatchRequest is the payload for a batch permission check.
type CheckBatchRequest struct {
	Permissions []string `json:"permissions" binding:"required,min=1,max=64,dive,min=1"`
}

// CheckBatch godoc
// POST /api/v1/access/check
// Resolves several permission keys at once, preserving request order.
func (h *AccessHandler) CheckBatch(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req CheckBatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	perms := make([]model.Permission, 0, len(req.Permissions))
	for _, raw := range req.Permissions {
		perm, ok := model.ParsePermission(raw)
		if !ok {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPermission,
				map[string]string{"permissions": "unknown permission key: " + raw})
			return
		}
		perms = append(perms, perm)
	}

	results := h.accessService.Check(claims.Role, perms)
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ResourceAccessRequest is the payload for a department-level access check.
type ResourceAccessRequest struct {
	DepartmentID *int `json:"department_id" binding:"required,min=0"`
}

// CheckResourceAccess godoc
// POST /api/v1/access/resource
// Applies the coarse department rule for the caller against a target
// resource's department.
func (h *AccessHandler) CheckResourceAccess(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req ResourceAccessRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	allowed := h.accessService.CanAccessResource(claims.Role, *req.DepartmentID, claims.DepartmentID)
	response.Success(c, http.StatusOK, gin.H{
		"allowed":       allowed,
		"department_id": *req.DepartmentID,
	})
}

// GetNavigation godoc
// GET /api/v1/access/navigation
// Returns the navigation entries visible to the caller's role.
func (h *AccessHandler) GetNavigation(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	entries := h.accessService.Navigation(claims.Role)
	response.Success(c, http.StatusOK, gin.H{"navigation": entries})
}

// GetWidgets godoc
// GET /api/v1/access/widgets
// Returns the dashboard widgets visible to the caller's role.
func (h *AccessHandler) GetWidgets(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	widgets := h.accessService.Widgets(claims.Role)
	response.Success(c, http.StatusOK, gin.H{"widgets": widgets})
}

// GetMatrix godoc
// GET /api/v1/admin/matrix
// Dumps the full authorization table for audit tooling.
func (h *AccessHandler) GetMatrix(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"matrix": h.accessService.Matrix()})
}
