package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"newshub/internal/apperrors"
	"newshub/internal/models"
	"newshub/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	repo repository.CommentRepository
}

func NewCommentController(repo repository.CommentRepository) *CommentController {
	return &CommentController{repo: repo}
}

// PatchCommentVotes godoc
// @Summary Adjust a comment's votes
// @Description Apply a signed inc_votes delta; an empty body is a no-op
// @Tags comment
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param votes body models.VoteInput true "Vote delta"
// @Success 200 {object} map[string]interface{} "Comment updated successfully"
// @Failure 400 {object} map[string]interface{} "Non-numeric ID or delta"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /api/comments/{comment_id} [patch]
func (cc *CommentController) PatchCommentVotes(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	// An entirely empty body is a valid no-op, same as {}.
	var input models.VoteInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	comment, err := cc.repo.ChangeVotes(id, input.IncVotes)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Delete a comment by ID
// @Tags comment
// @Param comment_id path int true "Comment ID"
// @Success 204 "Comment deleted"
// @Failure 400 {object} map[string]interface{} "Non-numeric comment ID"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /api/comments/{comment_id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
