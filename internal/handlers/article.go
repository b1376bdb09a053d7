package handlers

import (
	"fmt"
	"net/http"

	"errorswag/internal/middleware"
	"errorswag/internal/models"
	"errorswag/internal/pagination"
	"errorswag/internal/repository"
	"errorswag/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type ArticleHandler struct {
	articles  *repository.Repository[models.Article]
	bookmarks *repository.Repository[models.Bookmark]
}

func NewArticleHandler(database *gorm.DB) *ArticleHandler {
	return &ArticleHandler{
		articles:  repository.New[models.Article](database),
		bookmarks: repository.New[models.Bookmark](database),
	}
}

type createArticleRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required"`
	Body        string `json:"body" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

type bookmarkRequest struct {
	ArticleID uint `json:"articleId" binding:"required"`
}

// FetchAll returns the paginated article feed with projected fields.
func (h *ArticleHandler) FetchAll(c *gin.Context) {
	page, limit := middleware.PageQuery(c)
	paginate := pagination.New(page, limit)
	l, offset := paginate.QueryMetadata()

	count, articles, err := h.articles.FindAndCountAll(c.Request.Context(), repository.Query{
		Limit:  l,
		Offset: offset,
		Fields: []string{"id", "author_id", "title", "body", "image", "published_date", "status"},
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccessWithMeta(c, http.StatusOK, articles, "", paginate.PageMetadata(count, "/api/v1/articles", ""))
}

// Create persists a new article owned by the requester. The slug is derived
// from the title plus a random suffix, so equal titles never collide.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	me := middleware.CurrentUser(c)

	article, err := h.articles.Create(c.Request.Context(), &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Image:       req.Image,
		Slug:        utils.NewSlug(req.Title),
		AuthorID:    me.ID,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccess(c, http.StatusCreated, article, "Artilcle successfully created")
}

// Detail returns a single article along with its body rendered to
// sanitized HTML. The record itself comes from the ArticleExists
// middleware, which caches the lookup.
func (h *ArticleHandler) Detail(c *gin.Context) {
	article := middleware.Article(c)

	SendSuccess(c, http.StatusOK, gin.H{
		"article":  article,
		"bodyHtml": utils.RenderMarkdown(article.Body),
	}, "")
}

// GetBookmarks lists the requester's bookmarks with the joined articles.
func (h *ArticleHandler) GetBookmarks(c *gin.Context) {
	me := middleware.CurrentUser(c)

	bookmarks, err := h.bookmarks.FindAndInclude(c.Request.Context(),
		repository.Criteria{"user_id": me.ID}, "Article", nil)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if len(bookmarks) == 0 {
		SendError(c, http.StatusBadRequest, "You currently do not have any article in your bookmark")
		return
	}
	SendSuccess(c, http.StatusOK, bookmarks, "")
}

// AddBookmark bookmarks an article, find-or-create so repeats are harmless.
func (h *ArticleHandler) AddBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	me := middleware.CurrentUser(c)

	_, _, err := h.bookmarks.FindOrCreate(c.Request.Context(),
		repository.Criteria{"article_id": req.ArticleID, "user_id": me.ID},
		models.Bookmark{ArticleID: req.ArticleID, UserID: me.ID})
	if err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Article Bookmarked successfully")
}

// RemoveBookmark deletes the bookmark; removing an absent bookmark still
// succeeds.
func (h *ArticleHandler) RemoveBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	me := middleware.CurrentUser(c)

	if _, err := h.bookmarks.Remove(c.Request.Context(),
		repository.Criteria{"article_id": req.ArticleID, "user_id": me.ID}); err != nil {
		SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	SendSuccess(c, http.StatusOK, nil,
		fmt.Sprintf("article with id = %d has been successfully removed from your bookmarks", req.ArticleID))
}
