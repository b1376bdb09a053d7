package middleware

import (
	"net/http"

	"errorswag/internal/models"

	"github.com/gin-gonic/gin"
)

// SuperAdminCheck gates role management. Runs after Auth.
func SuperAdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized User, Please contact the administrator."})
			return
		}
		c.Next()
	}
}
