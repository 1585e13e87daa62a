package routes

import (
	"newshub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/api/users")
	{
		userRoutes.GET("", userController.GetUsers)
		userRoutes.GET("/:username", userController.GetUserByUsername)
	}
}
