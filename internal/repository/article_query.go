package repository

import (
	"fmt"
	"strconv"
	"strings"

	"newshub/internal/apperrors"
)

// ArticleListQuery holds the raw listing parameters exactly as they arrive
// on the URL query string. Empty string means the parameter was absent.
type ArticleListQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

const (
	defaultSortColumn = "created_at"
	defaultOrder      = "desc"
	defaultLimit      = 10
)

// sortableColumns is the allow-list for sort_by. Anything else is rejected.
var sortableColumns = map[string]bool{
	"article_id":      true,
	"title":           true,
	"topic":           true,
	"author":          true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
}

// articleListPlan is a validated, ready-to-apply listing query: the filter,
// the ORDER BY clause and the window.
type articleListPlan struct {
	topic       string
	orderClause string
	limit       int
	offset      int
}

// buildArticleListPlan validates the raw parameters in a fixed order
// (topic, sort_by, order, limit, page) so a multiply-invalid request
// always reports the same error, then assembles the plan.
func buildArticleListPlan(q ArticleListQuery) (*articleListPlan, error) {
	sortBy := defaultSortColumn
	if q.SortBy != "" {
		if !sortableColumns[q.SortBy] {
			return nil, apperrors.New(apperrors.KindInvalidSortColumn, "Invalid sort_by query")
		}
		sortBy = q.SortBy
	}

	order := defaultOrder
	if q.Order != "" {
		if q.Order != "asc" && q.Order != "desc" {
			return nil, apperrors.New(apperrors.KindInvalidOrder, "Invalid order query")
		}
		order = q.Order
	}

	limit, limitGiven, err := parsePositiveInt(q.Limit, apperrors.KindInvalidLimit, "Invalid limit query")
	if err != nil {
		return nil, err
	}
	if !limitGiven {
		limit = defaultLimit
	}

	page, pageGiven, err := parsePositiveInt(q.Page, apperrors.KindInvalidPage, "Invalid page query")
	if err != nil {
		return nil, err
	}

	// Paging past the first page only makes sense against an explicit
	// limit; p on its own is validated but applies no offset.
	offset := 0
	if limitGiven && pageGiven {
		offset = (page - 1) * limit
	}

	return &articleListPlan{
		topic:       q.Topic,
		orderClause: fmt.Sprintf("articles.%s %s", sortBy, order),
		limit:       limit,
		offset:      offset,
	}, nil
}

// parsePositiveInt parses a numeric query parameter. Whitespace-only input
// counts as absent, not invalid; anything else must be an integer >= 1.
func parsePositiveInt(raw string, kind apperrors.Kind, msg string) (int, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return 0, false, apperrors.New(kind, msg)
	}
	return n, true, nil
}
