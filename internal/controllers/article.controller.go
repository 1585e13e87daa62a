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

// allowedListParams is the strict allow-list for GET /api/articles; any
// other query key fails the whole request.
var allowedListParams = map[string]bool{
	"topic":   true,
	"sort_by": true,
	"order":   true,
	"limit":   true,
	"p":       true,
}

type ArticleController struct {
	repo        repository.ArticleRepository
	commentRepo repository.CommentRepository
}

func NewArticleController(repo repository.ArticleRepository, commentRepo repository.CommentRepository) *ArticleController {
	return &ArticleController{repo: repo, commentRepo: commentRepo}
}

// GetArticles godoc
// @Summary List articles
// @Description List articles with optional topic filter, sorting and pagination
// @Tags article
// @Produce json
// @Param topic query string false "Filter by topic slug"
// @Param sort_by query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param limit query int false "Page size (default 10)"
// @Param p query int false "Page number"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Unexpected or invalid query parameter"
// @Failure 404 {object} map[string]interface{} "Topic not found"
// @Router /api/articles [get]
func (ac *ArticleController) GetArticles(c *gin.Context) {
	for key := range c.Request.URL.Query() {
		if !allowedListParams[key] {
			apperrors.Respond(c, apperrors.New(apperrors.KindUnexpectedParameter,
				"Unexpected query parameters"))
			return
		}
	}

	articles, err := ac.repo.List(repository.ArticleListQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve a single article with its live comment count
// @Tags article
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Non-numeric article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{article_id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Create an article; article_img_url falls back to a placeholder
// @Tags article
// @Accept json
// @Produce json
// @Param article body models.ArticleInput true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Missing or wrong-typed fields"
// @Failure 404 {object} map[string]interface{} "Author not found"
// @Router /api/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.New(apperrors.KindInvalidArticleInput,
			"Bad request missing input, or incorrect input value type"))
		return
	}

	article, err := ac.repo.Insert(&input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// PatchArticleVotes godoc
// @Summary Adjust an article's votes
// @Description Apply a signed inc_votes delta; an empty body is a no-op
// @Tags article
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param votes body models.VoteInput true "Vote delta"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Non-numeric ID or delta"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{article_id} [patch]
func (ac *ArticleController) PatchArticleVotes(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
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

	article, err := ac.repo.ChangeVotes(id, input.IncVotes)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Delete an article by ID
// @Tags article
// @Param article_id path int true "Article ID"
// @Success 204 "Article deleted"
// @Failure 400 {object} map[string]interface{} "Non-numeric article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{article_id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCommentsByArticleID godoc
// @Summary List an article's comments
// @Description Retrieve comments for an article, newest first
// @Tags article
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Comments retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Non-numeric article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{article_id}/comments [get]
func (ac *ArticleController) GetCommentsByArticleID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	// The article must exist before its comments are fetched.
	if _, err := ac.repo.FindByID(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	comments, err := ac.repo.CommentsByArticleID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	// An article with no comments serves a bare empty array, not the
	// enveloped shape.
	if len(comments) == 0 {
		c.JSON(http.StatusOK, comments)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateCommentForArticle godoc
// @Summary Comment on an article
// @Description Add a comment by an existing user to an existing article
// @Tags article
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param comment body models.CommentInput true "Comment data"
// @Success 201 {object} map[string]interface{} "Comment created successfully"
// @Failure 400 {object} map[string]interface{} "Missing username or body, or non-numeric ID"
// @Failure 404 {object} map[string]interface{} "Article or user not found"
// @Router /api/articles/{article_id}/comments [post]
func (ac *ArticleController) CreateCommentForArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.BadRequest())
		return
	}

	if _, err := ac.repo.FindByID(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	comment, err := ac.commentRepo.InsertForArticle(id, &input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
