package controllers

import (
	"net/http"

	"newshub/internal/apperrors"
	"newshub/internal/models"
	"newshub/internal/repository"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	repo repository.TopicRepository
}

func NewTopicController(repo repository.TopicRepository) *TopicController {
	return &TopicController{repo: repo}
}

// GetTopics godoc
// @Summary List topics
// @Description Retrieve all topics
// @Tags topic
// @Produce json
// @Success 200 {object} map[string]interface{} "Topics retrieved successfully"
// @Router /api/topics [get]
func (tc *TopicController) GetTopics(c *gin.Context) {
	topics, err := tc.repo.FindAll()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// CreateTopic godoc
// @Summary Create a new topic
// @Description Create a topic from a slug and description
// @Tags topic
// @Accept json
// @Produce json
// @Param topic body models.TopicInput true "Topic data"
// @Success 201 {object} map[string]interface{} "Topic created successfully"
// @Failure 400 {object} map[string]interface{} "Missing or wrong-typed fields"
// @Router /api/topics [post]
func (tc *TopicController) CreateTopic(c *gin.Context) {
	var input models.TopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.New(apperrors.KindInvalidTopicInput,
			"Bad request missing input, or incorrect input value type"))
		return
	}

	topic, err := tc.repo.Insert(&input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
