package routes

import (
	"newshub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTopicRoutes(router *gin.Engine, topicController *controllers.TopicController) {
	topicRoutes := router.Group("/api/topics")
	{
		topicRoutes.GET("", topicController.GetTopics)
		topicRoutes.POST("", topicController.CreateTopic)
	}
}
