package routes

import (
	"newshub/internal/apperrors"
	"newshub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterApiRoutes(router *gin.Engine, apiController *controllers.ApiController) {
	router.GET("/api", apiController.GetEndpoints)

	// Anything outside the registered surface is a 404 with a fixed body.
	router.NoRoute(apperrors.PathNotFound)
}
