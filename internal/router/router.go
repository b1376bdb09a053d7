package router

import (
	"net/http"

	"errorswag/internal/config"
	"errorswag/internal/handlers"
	"errorswag/internal/middleware"
	"errorswag/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint onto the engine.
func RegisterRoutes(r *gin.Engine, database *gorm.DB, cfg *config.Config) {
	tokens := services.NewTokenService(cfg)
	mail := services.NewMailService(cfg)

	// Handlers
	userHandler := handlers.NewUserHandler(database, cfg, tokens, mail)
	articleHandler := handlers.NewArticleHandler(database)
	ratingHandler := handlers.NewRatingHandler(database)
	oauthHandler := handlers.NewOAuthHandler(database, cfg, tokens)

	r.GET("/welcome", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the ErrorSwag backend page"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page Not Found on ErrorSwag"})
	})

	// Social login (session-backed state round-trip)
	oauth := r.Group("/auth")
	{
		oauth.GET("/google", oauthHandler.GoogleLogin)
		oauth.GET("/google/redirect", oauthHandler.GoogleCallback)
		oauth.GET("/fail", oauthHandler.Fail)
	}

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", userHandler.CreateAccount)
		auth.POST("/login", userHandler.Login)
		// The verification link carries the token as a path param; Auth
		// picks it up from there.
		auth.PATCH("/verify/:token", middleware.Auth(tokens), userHandler.VerifyAccount)
	}

	users := api.Group("/users")
	{
		users.GET("", middleware.ValidatePagination(), userHandler.ListUsers)
		users.PATCH("/follow", middleware.Auth(tokens), middleware.IsSelf(), middleware.UserExists(database), userHandler.Follow)
		users.PATCH("/unfollow", middleware.Auth(tokens), middleware.IsSelf(), middleware.UserExists(database), userHandler.Unfollow)
		users.GET("/followers", middleware.Auth(tokens), userHandler.GetFollowers)
		users.GET("/followings", middleware.Auth(tokens), userHandler.GetFollowings)
		users.GET("/:id", middleware.Auth(tokens), userHandler.ViewProfile)
		users.PUT("/:id", middleware.Auth(tokens), userHandler.UpdateProfile)
		users.PATCH("/:id/role", middleware.Auth(tokens), middleware.SuperAdminCheck(), userHandler.UpdateRole)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", middleware.ValidatePagination(), articleHandler.FetchAll)
		articles.POST("", middleware.Auth(tokens), articleHandler.Create)
		articles.GET("/bookmark", middleware.Auth(tokens), articleHandler.GetBookmarks)
		articles.PATCH("/bookmark", middleware.Auth(tokens), middleware.ArticleExists(database), articleHandler.AddBookmark)
		articles.PATCH("/unbookmark", middleware.Auth(tokens), middleware.ArticleExists(database), articleHandler.RemoveBookmark)
		articles.GET("/:articleId", middleware.ArticleExists(database), articleHandler.Detail)
		articles.PATCH("/:articleId/ratings", middleware.Auth(tokens), middleware.ArticleExists(database), ratingHandler.RateArticle)
	}
}
