package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/acadion/acadion-access/internal/response"
	"github.com/acadion/acadion-access/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
)

// RequireAuth validates a platform JWT from the Authorization header and
// stores the claims in the request context.
func RequireAuth(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := tokenService.ValidateToken(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenExpired)
			case errors.Is(err, service.ErrUnknownRole):
				response.AbortFail(c, http.StatusUnauthorized, response.ErrUnknownRole)
			default:
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			}
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
