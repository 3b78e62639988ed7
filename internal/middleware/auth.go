package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/auth"
	"brodverk-backend/internal/models"
)

const sessionKey = "session"

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(sessionKey, models.SessionContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

func AdminMiddleware(jwtSecret string) gin.HandlerFunc {
	authMiddleware := AuthMiddleware(jwtSecret)
	return func(c *gin.Context) {
		authMiddleware(c)
		if c.IsAborted() {
			return
		}

		session, ok := Session(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found"})
			c.Abort()
			return
		}
		if !session.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Session returns the authenticated identity set by AuthMiddleware.
func Session(c *gin.Context) (models.SessionContext, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return models.SessionContext{}, false
	}
	session, ok := value.(models.SessionContext)
	return session, ok
}
