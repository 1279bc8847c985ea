package middleware

import (
	"net/http"

	"github.com/acadion/acadion-access/internal/authz"
	"github.com/acadion/acadion-access/internal/model"
	"github.com/acadion/acadion-access/internal/response"
	"github.com/gin-gonic/gin"
)

// RequirePermission checks the caller's role against the permission matrix.
// The token carries only the role; grants are resolved server-side so a
// matrix change takes effect without reissuing tokens.
func RequirePermission(perm model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !authz.HasPermission(claims.Role, perm) {
			response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// RequireAnyPermission checks that the caller's role holds at least one of
// the specified permissions.
func RequireAnyPermission(perms ...model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, perm := range perms {
			if authz.HasPermission(claims.Role, perm) {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrPermissionDenied)
	}
}
