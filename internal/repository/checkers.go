package repository

import (
	"newshub/internal/models"

	"gorm.io/gorm"
)

// ExistenceChecker answers whether a natural-keyed entity exists. It is
// read-only and used to disambiguate error causes around a primary
// operation; referential integrity on insert paths is still backed by the
// storage layer itself.
type ExistenceChecker interface {
	UserExists(username string) (bool, error)
	TopicExists(slug string) (bool, error)
}

type existenceChecker struct {
	db *gorm.DB
}

func NewExistenceChecker(db *gorm.DB) ExistenceChecker {
	return &existenceChecker{db: db}
}

func (ec *existenceChecker) UserExists(username string) (bool, error) {
	var count int64
	err := ec.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ec *existenceChecker) TopicExists(slug string) (bool, error) {
	var count int64
	err := ec.db.Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
