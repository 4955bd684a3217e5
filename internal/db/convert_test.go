package db

import (
	"testing"
	"time"

	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Author(t *testing.T) {
	t.Run("WithSocial", func(t *testing.T) {
		row := NewAuthor(content.Author{
			ID:     "1",
			Name:   "Sarah Johnson",
			Social: &content.Social{Twitter: "@sarah"},
		}, 2)

		assert.Equal(t, 2, row.OrderNumber)
		require.NotNil(t, row.Twitter)
		assert.Equal(t, "@sarah", *row.Twitter)
		assert.Nil(t, row.LinkedIn)

		back := NewContentAuthor(row)
		require.NotNil(t, back.Social)
		assert.Equal(t, "@sarah", back.Social.Twitter)
		assert.Empty(t, back.Social.Email)
	})

	t.Run("WithoutSocial", func(t *testing.T) {
		back := NewContentAuthor(NewAuthor(content.Author{ID: "2", Name: "Ahmed"}, 1))
		assert.Nil(t, back.Social)
	})
}

func TestConvert_Article(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := content.Article{
		ID:          "7",
		Slug:        "sample",
		Category:    content.Category{ID: "3", Slug: "sports"},
		Author:      content.Author{ID: "1"},
		PublishedAt: published,
		UpdatedAt:   published,
	}

	row := NewArticle(a, 7)
	assert.Equal(t, "3", row.CategoryID)
	assert.Equal(t, "1", row.AuthorID)
	assert.NotNil(t, row.Tags)

	back := NewContentArticle(row)
	assert.Equal(t, "3", back.Category.ID)
	assert.Empty(t, back.Category.Slug)
	assert.Equal(t, published, back.PublishedAt)
}

func TestMap(t *testing.T) {
	rows := Map([]content.Category{{ID: "a"}, {ID: "b"}}, NewCategory)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].OrderNumber)
	assert.Equal(t, 2, rows[1].OrderNumber)
}
