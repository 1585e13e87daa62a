package models

import (
	"time"
)

type Comment struct {
	CommentID int       `gorm:"column:comment_id;primaryKey" json:"comment_id" example:"1"`
	Body      string    `json:"body" example:"This morning, I showered for nine minutes."`
	Votes     int       `json:"votes" example:"16"`
	Author    string    `json:"author" example:"butter_bridge"`
	ArticleID int       `gorm:"column:article_id" json:"article_id" example:"9"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// CommentInput carries a create payload for POST /api/articles/:id/comments.
type CommentInput struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}
