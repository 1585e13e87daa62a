package repository

import (
	"errors"

	"newshub/internal/apperrors"
	"newshub/internal/models"

	"gorm.io/gorm"
)

const (
	articleListSelect = "articles.article_id, articles.title, articles.topic, articles.author, " +
		"articles.created_at, articles.votes, articles.article_img_url, " +
		"COUNT(comments.comment_id) AS comment_count"
	articleListGroup = "articles.article_id, articles.title, articles.topic, articles.author, " +
		"articles.created_at, articles.votes, articles.article_img_url"
	articleByIDSelect = "articles.*, (SELECT COUNT(*) FROM comments " +
		"WHERE comments.article_id = articles.article_id) AS comment_count"
)

type ArticleRepository interface {
	List(query ArticleListQuery) ([]models.ArticleSummary, error)
	FindByID(id int) (*models.Article, error)
	Insert(input *models.ArticleInput) (*models.Article, error)
	ChangeVotes(id int, delta *int) (*models.Article, error)
	Delete(id int) error
	CommentsByArticleID(id int) ([]models.Comment, error)
}

type articleRepository struct {
	db      *gorm.DB
	checker ExistenceChecker
}

func NewArticleRepository(db *gorm.DB, checker ExistenceChecker) ArticleRepository {
	return &articleRepository{db: db, checker: checker}
}

// List validates the raw listing parameters, runs the grouped join that
// derives comment_count, and disambiguates an empty result: an unknown
// topic filter is a 404, a known topic with no articles is an empty list.
func (r *articleRepository) List(query ArticleListQuery) ([]models.ArticleSummary, error) {
	plan, err := buildArticleListPlan(query)
	if err != nil {
		return nil, err
	}

	q := r.db.Table("articles").
		Select(articleListSelect).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group(articleListGroup).
		Order(plan.orderClause).
		Limit(plan.limit)
	if plan.topic != "" {
		q = q.Where("articles.topic = ?", plan.topic)
	}
	if plan.offset > 0 {
		q = q.Offset(plan.offset)
	}

	articles := make([]models.ArticleSummary, 0)
	if err := q.Scan(&articles).Error; err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		if err := r.resolveEmptyList(plan.topic); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// resolveEmptyList decides what an empty listing means: filtering on a
// topic that does not exist is a 404, anything else is a valid empty
// result.
func (r *articleRepository) resolveEmptyList(topic string) error {
	if topic == "" {
		return nil
	}
	exists, err := r.checker.TopicExists(topic)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("not found")
	}
	return nil
}

func (r *articleRepository) FindByID(id int) (*models.Article, error) {
	var article models.Article
	err := r.db.Table("articles").
		Select(articleByIDSelect).
		Where("articles.article_id = ?", id).
		Take(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("id does not exist")
		}
		return nil, err
	}
	return &article, nil
}

// Insert validates the payload shape before any lookup, then confirms the
// author exists. A new article starts with zero votes and zero comments.
func (r *articleRepository) Insert(input *models.ArticleInput) (*models.Article, error) {
	if input.Title == nil || input.Topic == nil || input.Author == nil || input.Body == nil {
		return nil, apperrors.New(apperrors.KindInvalidArticleInput,
			"Bad request missing input, or incorrect input value type")
	}

	exists, err := r.checker.UserExists(*input.Author)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("not found")
	}

	imgURL := models.DefaultArticleImgURL
	if input.ArticleImgURL != nil {
		imgURL = *input.ArticleImgURL
	}

	article := &models.Article{
		Title:         *input.Title,
		Topic:         *input.Topic,
		Author:        *input.Author,
		Body:          *input.Body,
		Votes:         0,
		ArticleImgURL: imgURL,
	}
	if err := r.db.Create(article).Error; err != nil {
		return nil, err
	}
	article.CommentCount = 0
	return article, nil
}

// ChangeVotes applies an additive delta. A nil delta is a no-op update
// that still returns the current row, so a PATCH with an empty body
// succeeds.
func (r *articleRepository) ChangeVotes(id int, delta *int) (*models.Article, error) {
	if delta != nil {
		result := r.db.Model(&models.Article{}).
			Where("article_id = ?", id).
			UpdateColumn("votes", gorm.Expr("votes + ?", *delta))
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, apperrors.NotFound("id does not exist")
		}
	}
	return r.FindByID(id)
}

func (r *articleRepository) Delete(id int) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("id does not exist")
	}
	return nil
}

// CommentsByArticleID returns the article's comments newest first. It does
// not verify the article exists; callers fetch the article first and
// propagate its not-found failure.
func (r *articleRepository) CommentsByArticleID(id int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.Where("article_id = ?", id).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}
