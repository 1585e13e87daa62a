package repository

import (
	"errors"

	"newshub/internal/apperrors"
	"newshub/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	InsertForArticle(articleID int, input *models.CommentInput) (*models.Comment, error)
	ChangeVotes(id int, delta *int) (*models.Comment, error)
	Delete(id int) error
}

type commentRepository struct {
	db      *gorm.DB
	checker ExistenceChecker
}

func NewCommentRepository(db *gorm.DB, checker ExistenceChecker) CommentRepository {
	return &commentRepository{db: db, checker: checker}
}

// InsertForArticle checks the payload and the author, then inserts with
// zero votes. Article existence is the caller's check; the storage layer's
// foreign key remains the fallback if that check raced a delete.
func (r *commentRepository) InsertForArticle(articleID int, input *models.CommentInput) (*models.Comment, error) {
	if input.Username == nil || *input.Username == "" || input.Body == nil || *input.Body == "" {
		return nil, apperrors.MissingInput()
	}

	exists, err := r.checker.UserExists(*input.Username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("not found")
	}

	comment := &models.Comment{
		Body:      *input.Body,
		Votes:     0,
		Author:    *input.Username,
		ArticleID: articleID,
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ChangeVotes mirrors the article vote update: additive delta, nil delta
// is a valid no-op that returns the current row.
func (r *commentRepository) ChangeVotes(id int, delta *int) (*models.Comment, error) {
	if delta != nil {
		result := r.db.Model(&models.Comment{}).
			Where("comment_id = ?", id).
			UpdateColumn("votes", gorm.Expr("votes + ?", *delta))
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, apperrors.NotFound("id does not exist")
		}
	}

	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("id does not exist")
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(id int) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("id does not exist")
	}
	return nil
}
