package repository

import (
	"errors"
	"testing"

	"newshub/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExistenceChecker struct {
	mock.Mock
}

func (m *MockExistenceChecker) UserExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockExistenceChecker) TopicExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func TestResolveEmptyListUnknownTopic(t *testing.T) {
	checker := new(MockExistenceChecker)
	checker.On("TopicExists", "bananas").Return(false, nil)
	repo := &articleRepository{checker: checker}

	err := repo.resolveEmptyList("bananas")

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "not found", appErr.Msg)
	checker.AssertExpectations(t)
}

func TestResolveEmptyListKnownTopicWithNoArticles(t *testing.T) {
	checker := new(MockExistenceChecker)
	checker.On("TopicExists", "paper").Return(true, nil)
	repo := &articleRepository{checker: checker}

	err := repo.resolveEmptyList("paper")

	assert.NoError(t, err)
	checker.AssertExpectations(t)
}

func TestResolveEmptyListWithoutTopicFilter(t *testing.T) {
	checker := new(MockExistenceChecker)
	repo := &articleRepository{checker: checker}

	err := repo.resolveEmptyList("")

	assert.NoError(t, err)
	checker.AssertNotCalled(t, "TopicExists", mock.Anything)
}

func TestResolveEmptyListPropagatesCheckerError(t *testing.T) {
	checker := new(MockExistenceChecker)
	checker.On("TopicExists", "cats").Return(false, errors.New("connection reset"))
	repo := &articleRepository{checker: checker}

	err := repo.resolveEmptyList("cats")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnknown, apperrors.From(err).Kind)
}
