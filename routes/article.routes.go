package routes

import (
	"newshub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/api/articles")
	{
		articleRoutes.GET("", articleController.GetArticles)
		articleRoutes.POST("", articleController.CreateArticle)
		articleRoutes.GET("/:article_id", articleController.GetArticleByID)
		articleRoutes.PATCH("/:article_id", articleController.PatchArticleVotes)
		articleRoutes.DELETE("/:article_id", articleController.DeleteArticle)
		articleRoutes.GET("/:article_id/comments", articleController.GetCommentsByArticleID)
		articleRoutes.POST("/:article_id/comments", articleController.CreateCommentForArticle)
	}
}
