package apperrors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond is the single translator from an error to an HTTP response.
// Handlers forward every failure here instead of interpreting it.
func Respond(c *gin.Context, err error) {
	appErr := From(err)
	if appErr.Kind == KindUnknown {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(appErr.Kind.Status(), gin.H{"msg": appErr.Msg})
}

// PathNotFound writes the catch-all 404 for unregistered routes.
func PathNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "path not found"})
}
