package handler

import (
	"net/http"

	"github.com/acadion/acadion-access/internal/model"
	"github.com/acadion/acadion-access/internal/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the closed role and permission enumerations. Both
// lists are fixed for the process lifetime.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListRoles godoc
// GET /api/v1/catalog/roles
func (h *CatalogHandler) ListRoles(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"roles": model.AllRoles})
}

// ListPermissions godoc
// GET /api/v1/catalog/permissions
func (h *CatalogHandler) ListPermissions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"permissions": model.AllPermissions})
}
