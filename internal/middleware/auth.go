package middleware

import (
	"classboard/internal/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware for downstream handlers.
const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"
)

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the verified identity to the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		tokenParts := strings.Split(authHeader, " ")
		if authHeader == "" || len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed Authorization header",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserNameKey, claims.Name)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID, or false when the
// request did not pass through AuthMiddleware.
func UserIDFromContext(c *gin.Context) (int, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
