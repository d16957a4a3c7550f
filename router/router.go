package router

import (
	"authorshaven/controllers"
	"authorshaven/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api.GET("/articles", middlewares.OptionalAuthMiddleware(), controllers.ListArticles)
	api.GET("/articles/top", controllers.GetTopFavorited)
	api.GET("/articles/:slug", middlewares.OptionalAuthMiddleware(), controllers.GetArticle)
	api.GET("/articles/:slug/comments", controllers.ListComments)

	protected := api.Group("/", middlewares.AuthMiddleware())
	{
		protected.POST("/articles", controllers.CreateArticle)
		protected.PUT("/articles/:slug", controllers.UpdateArticle)
		protected.DELETE("/articles/:slug", controllers.DeleteArticle)

		protected.POST("/articles/:slug/rate", controllers.RateArticle)

		protected.POST("/articles/:slug/favorite", controllers.FavoriteArticle)
		protected.DELETE("/articles/:slug/favorite", controllers.UnfavoriteArticle)

		protected.POST("/articles/:slug/comments", controllers.CreateComment)
		protected.POST("/articles/:slug/comments/:id/replies", controllers.ReplyToComment)
		protected.PUT("/comments/:id", controllers.UpdateComment)

		protected.POST("/articles/:slug/bookmark", controllers.BookmarkArticle)
		protected.GET("/bookmarks", controllers.ListBookmarks)
		protected.DELETE("/bookmarks/:id", controllers.DeleteBookmark)

		protected.POST("/articles/:slug/report", controllers.ReportArticle)
		protected.GET("/reports", controllers.ListReports)
	}

	// Reactions address articles by numeric id rather than slug.
	likes := r.Group("/api/reactions", middlewares.AuthMiddleware())
	{
		likes.POST("/articles/:id", controllers.ReactToArticle)
	}
	r.GET("/api/reactions/articles/:id", controllers.GetArticleReactions)

	return r
}
