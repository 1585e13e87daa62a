package repository

import (
	"testing"

	"newshub/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindOf(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	appErr := apperrors.From(err)
	return appErr.Kind
}

func TestBuildArticleListPlanDefaults(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{})

	require.NoError(t, err)
	assert.Equal(t, "articles.created_at desc", plan.orderClause)
	assert.Equal(t, 10, plan.limit)
	assert.Equal(t, 0, plan.offset)
	assert.Equal(t, "", plan.topic)
}

func TestBuildArticleListPlanSortColumns(t *testing.T) {
	columns := []string{"article_id", "title", "topic", "author", "created_at", "votes", "article_img_url"}

	for _, col := range columns {
		plan, err := buildArticleListPlan(ArticleListQuery{SortBy: col, Order: "asc"})
		require.NoError(t, err, col)
		assert.Equal(t, "articles."+col+" asc", plan.orderClause)
	}
}

func TestBuildArticleListPlanSortWithoutOrderDefaultsDesc(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{SortBy: "votes"})

	require.NoError(t, err)
	assert.Equal(t, "articles.votes desc", plan.orderClause)
}

func TestBuildArticleListPlanOrderWithoutSortAppliesToDefaultColumn(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Order: "asc"})

	require.NoError(t, err)
	assert.Equal(t, "articles.created_at asc", plan.orderClause)
}

func TestBuildArticleListPlanRejectsUnknownSortColumn(t *testing.T) {
	_, err := buildArticleListPlan(ArticleListQuery{SortBy: "body"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidSortColumn, kindOf(t, err))
}

func TestBuildArticleListPlanRejectsUnknownOrder(t *testing.T) {
	_, err := buildArticleListPlan(ArticleListQuery{Order: "sideways"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidOrder, kindOf(t, err))
}

func TestBuildArticleListPlanRejectsBadLimit(t *testing.T) {
	for _, limit := range []string{"banana", "0", "-3", "2.5"} {
		_, err := buildArticleListPlan(ArticleListQuery{Limit: limit})
		require.Error(t, err, limit)
		assert.Equal(t, apperrors.KindInvalidLimit, kindOf(t, err), limit)
	}
}

func TestBuildArticleListPlanRejectsBadPage(t *testing.T) {
	for _, page := range []string{"banana", "0", "-1"} {
		_, err := buildArticleListPlan(ArticleListQuery{Limit: "5", Page: page})
		require.Error(t, err, page)
		assert.Equal(t, apperrors.KindInvalidPage, kindOf(t, err), page)
	}
}

func TestBuildArticleListPlanValidationOrder(t *testing.T) {
	// A multiply-invalid query reports the first failing check: sort_by
	// before order, order before limit, limit before page.
	_, err := buildArticleListPlan(ArticleListQuery{SortBy: "body", Order: "sideways", Limit: "x", Page: "y"})
	assert.Equal(t, apperrors.KindInvalidSortColumn, kindOf(t, err))

	_, err = buildArticleListPlan(ArticleListQuery{Order: "sideways", Limit: "x", Page: "y"})
	assert.Equal(t, apperrors.KindInvalidOrder, kindOf(t, err))

	_, err = buildArticleListPlan(ArticleListQuery{Limit: "x", Page: "y"})
	assert.Equal(t, apperrors.KindInvalidLimit, kindOf(t, err))
}

func TestBuildArticleListPlanPagination(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Limit: "5", Page: "2"})

	require.NoError(t, err)
	assert.Equal(t, 5, plan.limit)
	assert.Equal(t, 5, plan.offset)
}

func TestBuildArticleListPlanPageWithoutLimitAppliesNoOffset(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Page: "3"})

	require.NoError(t, err)
	assert.Equal(t, 10, plan.limit)
	assert.Equal(t, 0, plan.offset)
}

func TestBuildArticleListPlanTrimsNumericParams(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Limit: " 5 ", Page: " 2 "})

	require.NoError(t, err)
	assert.Equal(t, 5, plan.limit)
	assert.Equal(t, 5, plan.offset)
}

func TestBuildArticleListPlanBlankNumericParamsCountAsAbsent(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Limit: "   ", Page: ""})

	require.NoError(t, err)
	assert.Equal(t, 10, plan.limit)
	assert.Equal(t, 0, plan.offset)
}

func TestBuildArticleListPlanKeepsTopicFilter(t *testing.T) {
	plan, err := buildArticleListPlan(ArticleListQuery{Topic: "cats"})

	require.NoError(t, err)
	assert.Equal(t, "cats", plan.topic)
}
