package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthEmployeeMiddleware guards the admin surface. It validates the
// bearer token, rejects revoked tokens and stores the employee identity in
// the request context.
func JWTAuthEmployeeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		employeeID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || employeeID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// Reject tokens present in the revocation list.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		revoked, err := utils.GetAuthCacheClient().Exists(ctx, "revoked:"+utils.HashToken(tokenString)).Result()
		if err == nil && revoked > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("employeeID", employeeID)
		c.Set("employeeRole", role)
		c.Next()
	}
}

// RequireAdminRole allows only employees with the admin role past. It must
// run after JWTAuthEmployeeMiddleware.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("employeeRole")
		if role != models.EmployeeRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}
