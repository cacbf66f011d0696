package middleware

import (
	"net/http"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/policy"
	"inkwell/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token into an actor and aborts with 401
// when the credential is missing or invalid.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a bearer token"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entity.Actor{
			ID:   c.GetString("user_id"),
			Role: entity.UserRole(c.GetString("role")),
		}
		if err := policy.CanAdminister(actor); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
