package repository

import (
	"newshub/internal/apperrors"
	"newshub/internal/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	FindAll() ([]models.Topic, error)
	Insert(input *models.TopicInput) (*models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindAll() ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	err := r.db.Find(&topics).Error
	return topics, err
}

// Insert requires both fields present. A duplicate slug is left to the
// storage layer's unique constraint rather than pre-checked here.
func (r *topicRepository) Insert(input *models.TopicInput) (*models.Topic, error) {
	if input.Slug == nil || input.Description == nil {
		return nil, apperrors.New(apperrors.KindInvalidTopicInput,
			"Bad request missing input, or incorrect input value type")
	}

	topic := &models.Topic{
		Slug:        *input.Slug,
		Description: *input.Description,
	}
	if err := r.db.Create(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}
