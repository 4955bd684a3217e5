package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewSeedStore(t *testing.T) {
	store, err := NewSeedStore(testNow)
	require.NoError(t, err)

	assert.Equal(t, 24, store.Len())
	assert.Len(t, store.Categories(), 6)
	assert.Len(t, store.Authors(), 3)

	t.Run("GeneratedArticlesCycleCategoriesAndAuthors", func(t *testing.T) {
		a, ok := store.ArticleBySlug("sample-article-7-news-story")
		require.True(t, ok)
		assert.Equal(t, "7", a.ID)
		assert.Equal(t, "technology", a.Category.Slug)
		assert.Equal(t, "1", a.Author.ID)
		assert.Equal(t, []string{"Tag7", "News", "Technology"}, a.Tags)
		assert.False(t, a.Featured)
		assert.Equal(t, testNow.Add(-7*24*time.Hour), a.PublishedAt)
		assert.Equal(t, 1, a.ReadTime)
	})

	t.Run("FeaturedUpToSix", func(t *testing.T) {
		for _, a := range store.Articles() {
			if a.ID == "3" {
				assert.False(t, a.Featured)
				continue
			}
			if len(a.ID) == 1 && a.ID <= "6" {
				assert.True(t, a.Featured, "article %s", a.ID)
			}
		}
	})

	t.Run("LiteralReadTimeKept", func(t *testing.T) {
		a, ok := store.ArticleByID("1")
		require.True(t, ok)
		assert.Equal(t, 5, a.ReadTime)
		assert.Equal(t, "Sarah Johnson", a.Author.Name)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		_, ok := store.ArticleBySlug("nonexistent-slug")
		assert.False(t, ok)
	})
}

func TestNewStore_Invariants(t *testing.T) {
	categories := []Category{{ID: "1", Name: "Tech", Slug: "tech"}}
	authors := []Author{{ID: "1", Name: "A"}}
	article := func(id, slug, categoryID, authorID string) Article {
		return Article{
			ID:       id,
			Slug:     slug,
			Category: Category{ID: categoryID},
			Author:   Author{ID: authorID},
		}
	}

	tests := []struct {
		name       string
		categories []Category
		articles   []Article
		wantErr    error
	}{
		{
			name:       "DuplicateArticleSlug",
			categories: categories,
			articles:   []Article{article("1", "a", "1", "1"), article("2", "a", "1", "1")},
			wantErr:    ErrDuplicateSlug,
		},
		{
			name:       "DuplicateArticleID",
			categories: categories,
			articles:   []Article{article("1", "a", "1", "1"), article("1", "b", "1", "1")},
			wantErr:    ErrDuplicateID,
		},
		{
			name:       "UnknownCategory",
			categories: categories,
			articles:   []Article{article("1", "a", "9", "1")},
			wantErr:    ErrUnknownReference,
		},
		{
			name:       "UnknownAuthor",
			categories: categories,
			articles:   []Article{article("1", "a", "1", "9")},
			wantErr:    ErrUnknownReference,
		},
		{
			name:       "EmptyArticleSlug",
			categories: categories,
			articles:   []Article{article("1", "", "1", "1")},
			wantErr:    ErrEmptySlug,
		},
		{
			name:       "DuplicateCategorySlug",
			categories: []Category{{ID: "1", Slug: "tech"}, {ID: "2", Slug: "tech"}},
			wantErr:    ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.categories, authors, tt.articles)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewStore_ResolvesReferences(t *testing.T) {
	categories := []Category{{ID: "1", Name: "Tech", Slug: "tech", Color: "tech"}}
	authors := []Author{{ID: "1", Name: "Jane"}}

	store, err := NewStore(categories, authors, []Article{{
		ID:       "1",
		Slug:     "a",
		Category: Category{ID: "1"},
		Author:   Author{ID: "1"},
		Content:  "<p>" + strings.Repeat("word ", 401) + "</p>",
	}})
	require.NoError(t, err)

	a, ok := store.ArticleBySlug("a")
	require.True(t, ok)
	assert.Equal(t, "Tech", a.Category.Name)
	assert.Equal(t, "Jane", a.Author.Name)
	assert.Equal(t, 3, a.ReadTime)

	c, ok := store.CategoryBySlug("tech")
	require.True(t, ok)
	assert.Equal(t, "1", c.ID)
}

func TestText(t *testing.T) {
	body := "<h2>Key</h2><p>One two</p><ul><li>three</li><li>four</li></ul><script>var x = 1;</script>"

	assert.Equal(t, "Key One two three four", PlainText(body))
	assert.Equal(t, 5, WordCount(body))
	assert.Equal(t, 1, ReadTime(body))
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 2, ReadTime(strings.Repeat("w ", 201)))
}
