package middleware

import (
	"errors"
	"net/http"

	"github.com/acadion/acadion-access/internal/response"
	"github.com/acadion/acadion-access/internal/service"
	"github.com/gin-gonic/gin"
)

// CheckTokenRevocation validates the JWT's JTI against the session state the
// identity backend keeps in Redis. Two checks run in order: a revocation
// marker (admin-forced logout, password change) rejects the token outright,
// and the per-user active-session record rejects tokens from sessions that a
// newer sign-in has replaced.
func CheckTokenRevocation(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		// Tokens without a JTI predate session tracking; let them pass on
		// signature and expiry alone.
		if claims.ID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		if err := tokenService.CheckRevocation(ctx, claims.ID); err != nil {
			if errors.Is(err, service.ErrTokenRevoked) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRevoked)
				return
			}
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		if err := tokenService.ValidateSession(ctx, claims.UserID, claims.ID); err != nil {
			if errors.Is(err, service.ErrSessionSuperseded) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionSuperseded)
				return
			}
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		c.Next()
	}
}
