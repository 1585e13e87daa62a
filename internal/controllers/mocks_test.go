package controllers_test

import (
	"newshub/internal/apperrors"
	"newshub/internal/models"
	"newshub/internal/repository"

	"github.com/stretchr/testify/mock"
)

func notFoundErr(msg string) error {
	return apperrors.NotFound(msg)
}

func missingInputErr() error {
	return apperrors.MissingInput()
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) List(query repository.ArticleListQuery) ([]models.ArticleSummary, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleSummary), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id int) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Insert(input *models.ArticleInput) (*models.Article, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) ChangeVotes(id int, delta *int) (*models.Article, error) {
	args := m.Called(id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) CommentsByArticleID(id int) ([]models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) InsertForArticle(articleID int, input *models.CommentInput) (*models.Comment, error) {
	args := m.Called(articleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ChangeVotes(id int, delta *int) (*models.Comment, error) {
	args := m.Called(id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) FindAll() ([]models.Topic, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepository) Insert(input *models.TopicInput) (*models.Topic, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
