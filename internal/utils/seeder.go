package utils

import (
	"fmt"
	"log"
	"time"

	"newshub/database"
	"newshub/internal/models"

	"gorm.io/gorm"
)

// Development seed data, patterned after the fixtures the API is usually
// demoed with.

var seedUsers = []models.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

var seedTopics = []models.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

var seedArticles = []models.Article{
	{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
		Body: "I find this existence challenging", Votes: 100, ArticleImgURL: models.DefaultArticleImgURL},
	{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
		Body: "Call me Mitchell.", ArticleImgURL: models.DefaultArticleImgURL},
	{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
		Body: "some gifs", ArticleImgURL: models.DefaultArticleImgURL},
	{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
		Body: "We all love Mitch and his wonderful, unique typing style.", ArticleImgURL: models.DefaultArticleImgURL},
	{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
		Body: "Bastet walks amongst us", ArticleImgURL: models.DefaultArticleImgURL},
}

var seedComments = []models.Comment{
	{Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, Author: "butter_bridge", ArticleID: 1},
	{Body: "The beautiful thing about treasure is that it exists.", Votes: 14, Author: "butter_bridge", ArticleID: 1},
	{Body: "Replacing the quiet elegance of the dark suit and tie.", Votes: 100, Author: "icellusedkars", ArticleID: 1},
	{Body: "I hate streaming noses", Votes: 0, Author: "icellusedkars", ArticleID: 1},
	{Body: "git push origin master", Votes: 0, Author: "icellusedkars", ArticleID: 3},
	{Body: "Ambidextrous marsupial", Votes: 0, Author: "icellusedkars", ArticleID: 3},
	{Body: "This morning, I showered for nine minutes.", Votes: 16, Author: "butter_bridge", ArticleID: 5},
}

// SeedAll wipes the four tables and inserts the fixture data. Insertion
// order follows the reference graph: users and topics before articles,
// articles before comments.
func SeedAll() error {
	db := database.DB

	if err := ClearAll(); err != nil {
		return err
	}

	if err := db.Create(&seedUsers).Error; err != nil {
		return fmt.Errorf("failed to seed users: %v", err)
	}
	if err := db.Create(&seedTopics).Error; err != nil {
		return fmt.Errorf("failed to seed topics: %v", err)
	}

	now := time.Now()
	articles := make([]models.Article, len(seedArticles))
	copy(articles, seedArticles)
	for i := range articles {
		// Spread created_at so the default ordering is deterministic.
		articles[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
	}
	if err := db.Create(&articles).Error; err != nil {
		return fmt.Errorf("failed to seed articles: %v", err)
	}

	comments := make([]models.Comment, len(seedComments))
	copy(comments, seedComments)
	for i := range comments {
		comments[i].CreatedAt = now.Add(-time.Duration(i) * time.Minute)
	}
	if err := db.Create(&comments).Error; err != nil {
		return fmt.Errorf("failed to seed comments: %v", err)
	}

	log.Printf("Seeded %d users, %d topics, %d articles, %d comments",
		len(seedUsers), len(seedTopics), len(articles), len(comments))
	return nil
}

// ClearAll empties the four tables, children first.
func ClearAll() error {
	db := database.DB
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Article{},
		&models.Topic{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %v", err)
		}
	}
	return nil
}

// CountRows reports the row count per table, for the seed command's
// check subcommand.
func CountRows() (map[string]int64, error) {
	db := database.DB
	counts := make(map[string]int64)
	tables := map[string]interface{}{
		"users":    &models.User{},
		"topics":   &models.Topic{},
		"articles": &models.Article{},
		"comments": &models.Comment{},
	}
	for name, model := range tables {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %v", name, err)
		}
		counts[name] = count
	}
	return counts, nil
}
