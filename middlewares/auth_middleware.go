package middlewares

import (
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the middleware stores the resolved user.
const ContextUserKey = "currentUser"

// AuthMiddleware resolves the bearer token to a live user and rejects
// anything else with 403 before the handler runs. A token deleted by
// logout stops resolving, so a second logout never reaches the handler.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Authentication credentials were not provided"})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := auth.ResolveToken(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
