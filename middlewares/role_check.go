package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/utils"
)

// RequireRole guards a route group behind a role carried in the JWT.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesValue, exists := c.Get("roles")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		roles, ok := rolesValue.([]string)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", role))
		c.Abort()
	}
}
