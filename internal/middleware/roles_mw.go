package middleware

import (
	"net/http"

	"kiit_connect/internal/model"
	"kiit_connect/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware requires the authenticated principal to hold at least role.
// JWTAuthMiddleware must run first.
func RoleMiddleware(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": service.ErrMissingToken.Error()})
			return
		}

		if err := service.Authorize(principal, role); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": service.ErrInsufficientRole.Error()})
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
