package middleware

import (
	"net/http"
	"strings"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// Keys under which the verified session lands in the gin context.
const (
	SessionKey = "session"
)

// Auth verifies the bearer token and stores the session on the context.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		session, err := tokens.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Auth must run first.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
			c.Abort()
			return
		}
		if session.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the verified session or nil.
func GetSession(c *gin.Context) *services.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*services.Session)
	if !ok {
		return nil
	}
	return session
}
