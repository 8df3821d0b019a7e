package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/auth"
	"github.com/markeugine/atelier-backend/internal/models"
)

const (
	ContextUser      = "user"
	ContextUserID    = "userID"
	ContextIsStaff   = "isStaff"
	ContextAuthToken = "authToken"
)

// AuthMiddleware resolves the opaque bearer token against the auth_tokens
// table and loads the caller into the request context.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		plaintext := parts[1]

		user, err := auth.Resolve(c.Request.Context(), db, plaintext)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextIsStaff, user.IsStaff)
		c.Set(ContextAuthToken, plaintext)

		c.Next()
	}
}

// RequireStaff gates a route group to staff accounts. Runs after
// AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsStaff) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the context.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}

// IsStaff reports whether the caller is a staff account. False for
// unauthenticated requests.
func IsStaff(c *gin.Context) bool {
	return c.GetBool(ContextIsStaff)
}
