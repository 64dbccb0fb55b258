package middleware

import (
	"errors"
	"net/http"

	"kiit_connect/internal/model"
	"kiit_connect/internal/service"

	"github.com/gin-gonic/gin"
)

const AuthPrincipalKey = "authPrincipal"

// JWTAuthMiddleware resolves the bearer token into a principal or aborts with 401
func JWTAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, service.ErrStoreUnavailable) {
				status = http.StatusInternalServerError
				err = service.ErrStoreUnavailable
			}
			c.AbortWithStatusJSON(status, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.Set(AuthPrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal set by JWTAuthMiddleware, if any
func PrincipalFrom(c *gin.Context) (*model.Principal, bool) {
	val, exists := c.Get(AuthPrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := val.(*model.Principal)
	return principal, ok && principal != nil
}
