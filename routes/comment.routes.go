package routes

import (
	"newshub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	commentRoutes := router.Group("/api/comments")
	{
		commentRoutes.PATCH("/:comment_id", commentController.PatchCommentVotes)
		commentRoutes.DELETE("/:comment_id", commentController.DeleteComment)
	}
}
