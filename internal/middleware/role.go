package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/pkg/response"
)

// RequireRole returns a middleware that allows only the given roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{})
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		roleVal, ok := c.Get(ContextUserRole)
		if !ok {
			response.Unauthorized(c, "missing user context")
			c.Abort()
			return
		}
		role, _ := roleVal.(string)
		if _, ok := allowed[models.Role(role)]; !ok {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ViewerRole returns the requesting admin's role from context.
func ViewerRole(c *gin.Context) models.Role {
	roleVal, _ := c.Get(ContextUserRole)
	role, _ := roleVal.(string)
	return models.Role(role)
}
