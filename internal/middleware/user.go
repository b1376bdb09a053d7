package middleware

import (
	"fmt"
	"net/http"

	"errorswag/internal/models"
	"errorswag/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type followeeBody struct {
	FolloweeID uint `json:"followeeId"`
}

// IsSelf rejects follow/unfollow requests targeting the requester. Runs
// after Auth.
func IsSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body followeeBody
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil || body.FolloweeID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "followeeId is required"})
			return
		}

		if body.FolloweeID == CurrentUser(c).ID {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "You cannot follow or unfollow yourself"})
			return
		}
		c.Next()
	}
}

// UserExists ensures the followee referenced in the body is a real account.
func UserExists(database *gorm.DB) gin.HandlerFunc {
	users := repository.New[models.User](database)

	return func(c *gin.Context) {
		var body followeeBody
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil || body.FolloweeID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "followeeId is required"})
			return
		}

		user, err := users.FindOneByField(c.Request.Context(), repository.Criteria{"id": body.FolloweeID})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("There is no user with id = %d", body.FolloweeID)})
			return
		}
		c.Next()
	}
}
