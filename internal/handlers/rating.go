package handlers

import (
	"net/http"

	"errorswag/internal/middleware"
	"errorswag/internal/models"
	"errorswag/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type RatingHandler struct {
	ratings *repository.Repository[models.Rating]
}

func NewRatingHandler(database *gorm.DB) *RatingHandler {
	return &RatingHandler{
		ratings: repository.New[models.Rating](database),
	}
}

type ratingRequest struct {
	Ratings int `json:"ratings" binding:"required,min=1,max=5"`
}

// RateArticle upserts the requester's rating for the article resolved by
// ArticleExists: an existing rating is updated in place, otherwise one is
// created. Authors cannot rate their own article; that check runs before
// any persistence call.
func (h *RatingHandler) RateArticle(c *gin.Context) {
	article := middleware.Article(c)
	me := middleware.CurrentUser(c)

	if article.AuthorID == me.ID {
		SendError(c, http.StatusForbidden, "You cannot rate your article")
		return
	}

	var req ratingRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		SendError(c, http.StatusBadRequest, "ratings must be a number between 1 and 5")
		return
	}

	criteria := repository.Criteria{"article_id": article.ID, "user_id": me.ID}

	existing, err := h.ratings.FindOneByField(c.Request.Context(), criteria)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if existing != nil {
		if _, err := h.ratings.Update(c.Request.Context(),
			repository.Criteria{"ratings": req.Ratings}, criteria); err != nil {
			SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
		existing.Ratings = req.Ratings
		SendSuccess(c, http.StatusOK, existing, "")
		return
	}

	created, err := h.ratings.Create(c.Request.Context(), &models.Rating{
		ArticleID: article.ID,
		UserID:    me.ID,
		Ratings:   req.Ratings,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	SendSuccess(c, http.StatusOK, created, "")
}
