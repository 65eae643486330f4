package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetbook/internal/pkg/response"
)

// RequireRole ensures the caller selected the given role at login.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly guards the back-office routes.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
