package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpointCatalog is the static description served at GET /api.
var endpointCatalog = gin.H{
	"GET /api": gin.H{
		"description": "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": gin.H{
		"description": "serves an array of all topics",
	},
	"POST /api/topics": gin.H{
		"description": "adds a new topic",
		"exampleBody": gin.H{"slug": "coding", "description": "Code is love, code is life"},
	},
	"GET /api/articles": gin.H{
		"description": "serves an array of all articles",
		"queries":     []string{"topic", "sort_by", "order", "limit", "p"},
	},
	"POST /api/articles": gin.H{
		"description": "adds a new article",
		"exampleBody": gin.H{
			"title":  "Running a Node App",
			"topic":  "coding",
			"author": "jessjelly",
			"body":   "This is part two of a series on how to get up and running with Node.",
		},
	},
	"GET /api/articles/:article_id": gin.H{
		"description": "serves a single article by its id",
	},
	"PATCH /api/articles/:article_id": gin.H{
		"description": "adjusts an article's votes by inc_votes",
		"exampleBody": gin.H{"inc_votes": 1},
	},
	"DELETE /api/articles/:article_id": gin.H{
		"description": "deletes an article by its id",
	},
	"GET /api/articles/:article_id/comments": gin.H{
		"description": "serves the comments of an article, newest first",
	},
	"POST /api/articles/:article_id/comments": gin.H{
		"description": "adds a comment to an article",
		"exampleBody": gin.H{"username": "butter_bridge", "body": "Great article!"},
	},
	"PATCH /api/comments/:comment_id": gin.H{
		"description": "adjusts a comment's votes by inc_votes",
		"exampleBody": gin.H{"inc_votes": -1},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes a comment by its id",
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
	},
	"GET /api/users/:username": gin.H{
		"description": "serves a single user by username",
	},
}

type ApiController struct{}

func NewApiController() *ApiController {
	return &ApiController{}
}

// GetEndpoints godoc
// @Summary Describe the API
// @Description Serve a catalog of every available endpoint
// @Tags api
// @Produce json
// @Success 200 {object} map[string]interface{} "Endpoint catalog"
// @Router /api [get]
func (ec *ApiController) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, endpointCatalog)
}
