package utils

import (
	"backend/entity"

	"github.com/gin-gonic/gin"
)

// The auth middleware resolves the actor once and stores it here; handlers
// read it back instead of reaching for any request-global state.

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return entity.RoleCustomer
}
