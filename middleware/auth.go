package middleware

import (
	"net/http"
	"strings"

	"eyenova-backend/config"
	"eyenova-backend/services"
	"eyenova-backend/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the Bearer token and loads the authenticated user
// into the context under "currentUser".
func RequireAuth(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		email, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "), config.Get().JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		user, err := userService.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid Bearer token is present but lets
// anonymous requests through.
func OptionalAuth(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		email, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "), config.Get().JWT.Secret)
		if err != nil {
			c.Next()
			return
		}
		if user, err := userService.GetByEmail(c.Request.Context(), email); err == nil {
			c.Set("currentUser", user)
		}
		c.Next()
	}
}
