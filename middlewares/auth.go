package middlewares

import (
	"net/http"
	"strings"

	"backend/entity"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the actor's role
// into the request context. When requiredRoles are given, the request is
// rejected with 403 unless the resolved role is one of them; routes with
// open reads simply register their GETs without this middleware.
func AuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "authentication required"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			return
		}

		role, ok := entity.ParseRole(claims.Role)
		if !ok {
			role = entity.RoleCustomer
		}
		c.Set("userId", claims.UserID)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "not authorized"})
				return
			}
		}

		c.Next()
	}
}
