package middleware

import (
	"fmt"
	"net/http"
	"time"

	"errorswag/internal/models"
	"errorswag/internal/repository"
	"errorswag/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ArticleKey is the context key holding the resolved article.
const ArticleKey = "article"

const articleCacheTTL = 5 * time.Minute

type articleIDBody struct {
	ArticleID uint `json:"articleId"`
}

// ArticleExists resolves the referenced article from the :articleId route
// param or the request body, 404s when it does not exist, and stores the
// record in the context for the handler. Lookups are cached; article rows
// are immutable after creation so the TTL is the only invalidation needed.
func ArticleExists(database *gorm.DB) gin.HandlerFunc {
	articles := repository.New[models.Article](database)

	return func(c *gin.Context) {
		var articleID uint
		if idStr := c.Param("articleId"); idStr != "" {
			id := utils.StringToInt(idStr)
			if id < 1 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "articleId must be a positive integer"})
				return
			}
			articleID = uint(id)
		} else {
			var body articleIDBody
			// ShouldBindBodyWith buffers the body so the handler can bind it again.
			if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil || body.ArticleID == 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "articleId is required"})
				return
			}
			articleID = body.ArticleID
		}

		cacheKey := fmt.Sprintf("article:id:%d", articleID)
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			if article, ok := cached.(*models.Article); ok {
				c.Set(ArticleKey, article)
				c.Next()
				return
			}
		}

		article, err := articles.FindOneByField(c.Request.Context(), repository.Criteria{"id": articleID})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if article == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "The requested article was not found"})
			return
		}

		utils.GetCache().Set(cacheKey, article, articleCacheTTL)
		c.Set(ArticleKey, article)
		c.Next()
	}
}

// Article returns the record resolved by ArticleExists.
func Article(c *gin.Context) *models.Article {
	v, ok := c.Get(ArticleKey)
	if !ok {
		return nil
	}
	article, _ := v.(*models.Article)
	return article
}
