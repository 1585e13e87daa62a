package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestArticleCommentsCascadeOnDelete(t *testing.T) {
	s := parseSchema(t, &Article{})

	rel, ok := s.Relationships.Relations["Comments"]
	require.True(t, ok, "articles must declare their comments relation")

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)

	require.Len(t, rel.References, 1)
	assert.Equal(t, "ArticleID", rel.References[0].PrimaryKey.Name)
	assert.Equal(t, "ArticleID", rel.References[0].ForeignKey.Name)
}

func TestTopicArticlesReference(t *testing.T) {
	s := parseSchema(t, &Topic{})

	rel, ok := s.Relationships.Relations["Articles"]
	require.True(t, ok, "topics must declare their articles relation")
	require.NotNil(t, rel.ParseConstraint())

	require.Len(t, rel.References, 1)
	assert.Equal(t, "Slug", rel.References[0].PrimaryKey.Name)
	assert.Equal(t, "Topic", rel.References[0].ForeignKey.Name)
}

func TestUserAuthorshipReferences(t *testing.T) {
	s := parseSchema(t, &User{})

	for _, name := range []string{"Articles", "Comments"} {
		rel, ok := s.Relationships.Relations[name]
		require.True(t, ok, "users must declare the %s relation", name)
		require.NotNil(t, rel.ParseConstraint())

		require.Len(t, rel.References, 1)
		assert.Equal(t, "Username", rel.References[0].PrimaryKey.Name)
		assert.Equal(t, "Author", rel.References[0].ForeignKey.Name)
	}
}

func TestCommentCountStaysOutOfMigration(t *testing.T) {
	s := parseSchema(t, &Article{})

	field, ok := s.FieldsByName["CommentCount"]
	require.True(t, ok)
	assert.True(t, field.IgnoreMigration)
	assert.False(t, field.Creatable)
	assert.False(t, field.Updatable)
}
