package models

import (
	"time"
)

// DefaultArticleImgURL is used when a create payload omits article_img_url.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

type Article struct {
	ArticleID     int       `gorm:"column:article_id;primaryKey" json:"article_id" example:"1"`
	Title         string    `json:"title" example:"Living in the shadow of a great man"`
	Topic         string    `json:"topic" example:"mitch"`
	Author        string    `json:"author" example:"butter_bridge"`
	Body          string    `json:"body" example:"I find this existence challenging"`
	CreatedAt     time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	Votes         int       `json:"votes" example:"100"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`
	// CommentCount is derived from the comments table on every read,
	// never stored.
	CommentCount int `gorm:"->;-:migration" json:"comment_count" example:"11"`
	// Deleting an article takes its comments with it.
	Comments []Comment `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}

// ArticleSummary is one row of the article listing; the body column is
// excluded from the listing query.
type ArticleSummary struct {
	ArticleID     int       `gorm:"column:article_id" json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`
	CommentCount  int       `gorm:"column:comment_count" json:"comment_count"`
}

// ArticleInput carries a create payload. Pointer fields distinguish a field
// that was absent from one that was present with a zero value.
type ArticleInput struct {
	Title         *string `json:"title"`
	Topic         *string `json:"topic"`
	Author        *string `json:"author"`
	Body          *string `json:"body"`
	ArticleImgURL *string `json:"article_img_url"`
}

// VoteInput carries a PATCH payload; a nil IncVotes means the delta was
// absent, which is a valid no-op update.
type VoteInput struct {
	IncVotes *int `json:"inc_votes"`
}
