package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "fleetbook/internal/pkg/jwt"
	"fleetbook/internal/pkg/response"
)

// Auth extracts the role claim from the bearer token and stores it on
// the context for the role guard.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
