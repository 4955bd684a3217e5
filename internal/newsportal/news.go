package newsportal

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/newshub/internal/content"
)

const (
	DefaultPageSize     = 12
	DefaultRelatedLimit = 3

	// AllCategories is the category filter value meaning "no filter".
	AllCategories = "all"
)

type ArticleFilter struct {
	Page     int
	PageSize int
	Category string
	Featured *bool
}

type ArticlePage struct {
	Articles   []content.Article `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}

type SearchResult struct {
	ArticlePage
	Query string `json:"query"`
}

type CategoryCount struct {
	Category content.Category `json:"category"`
	Count    int              `json:"count"`
}

// Manager answers read queries against the content store. None of its
// methods fail on bad input; the only error they return is the context error
// when a simulated latency is configured and the context ends first.
type Manager struct {
	store   *content.Store
	latency time.Duration
}

func NewManager(store *content.Store, latency time.Duration) *Manager {
	return &Manager{
		store:   store,
		latency: latency,
	}
}

// Articles filters by category slug and featured flag, sorts by publication
// date (newest first) and returns the requested page.
func (m *Manager) Articles(ctx context.Context, filter ArticleFilter) (ArticlePage, error) {
	if err := m.wait(ctx); err != nil {
		return ArticlePage{}, fmt.Errorf("list articles: %w", err)
	}

	var filtered []content.Article
	for _, a := range m.store.Articles() {
		if filter.Category != "" && filter.Category != AllCategories && a.Category.Slug != filter.Category {
			continue
		}
		if filter.Featured != nil && a.Featured != *filter.Featured {
			continue
		}
		filtered = append(filtered, a)
	}

	sortByPublishedDesc(filtered)

	items, p := Paginate(filtered, filter.Page, pageSizeOrDefault(filter.PageSize))

	return ArticlePage{Articles: items, Pagination: p}, nil
}

// ArticleBySlug returns nil when no article has the slug.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*content.Article, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}

	a, ok := m.store.ArticleBySlug(slug)
	if !ok {
		return nil, nil
	}

	return &a, nil
}

// RelatedArticles returns up to limit other articles of the same category,
// newest first. It is empty when articleID is unknown.
func (m *Manager) RelatedArticles(ctx context.Context, articleID string, limit int) ([]content.Article, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("get related articles: %w", err)
	}

	source, ok := m.store.ArticleByID(articleID)
	if !ok || limit < 1 {
		return []content.Article{}, nil
	}

	related := []content.Article{}
	for _, a := range m.store.Articles() {
		if a.ID != source.ID && a.Category.ID == source.Category.ID {
			related = append(related, a)
		}
	}

	sortByPublishedDesc(related)

	return related[:min(limit, len(related))], nil
}

// Search matches the query case-insensitively as a substring of the title,
// excerpt, body or any tag. Results keep store order. A blank query matches
// every article; callers that do not want that must check for it.
func (m *Manager) Search(ctx context.Context, query string, page, pageSize int) (SearchResult, error) {
	if err := m.wait(ctx); err != nil {
		return SearchResult{}, fmt.Errorf("search articles: %w", err)
	}

	term := strings.ToLower(query)

	var matched []content.Article
	for _, a := range m.store.Articles() {
		if matches(a, term) {
			matched = append(matched, a)
		}
	}

	items, p := Paginate(matched, page, pageSizeOrDefault(pageSize))

	return SearchResult{
		ArticlePage: ArticlePage{Articles: items, Pagination: p},
		Query:       query,
	}, nil
}

func (m *Manager) Categories(ctx context.Context) ([]content.Category, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return m.store.Categories(), nil
}

// CategoryBySlug returns nil when the slug is unknown.
func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}

	c, ok := m.store.CategoryBySlug(slug)
	if !ok {
		return nil, nil
	}

	return &c, nil
}

func (m *Manager) Authors(ctx context.Context) ([]content.Author, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	return m.store.Authors(), nil
}

// CategoryCounts returns every category with its number of articles, in
// category order.
func (m *Manager) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	counts := make(map[string]int, len(m.store.Categories()))
	for _, a := range m.store.Articles() {
		counts[a.Category.ID]++
	}

	result := make([]CategoryCount, 0, len(m.store.Categories()))
	for _, c := range m.store.Categories() {
		result = append(result, CategoryCount{Category: c, Count: counts[c.ID]})
	}

	return result, nil
}

// AllArticles returns every article in store order.
func (m *Manager) AllArticles() []content.Article {
	return m.store.Articles()
}

func (m *Manager) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(m.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func matches(a content.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term) ||
		strings.Contains(strings.ToLower(a.Content), term) {
		return true
	}

	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}

	return false
}

func sortByPublishedDesc(articles []content.Article) {
	slices.SortStableFunc(articles, func(a, b content.Article) int {
		return cmp.Compare(b.PublishedAt.UnixNano(), a.PublishedAt.UnixNano())
	})
}

func pageSizeOrDefault(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}

	return pageSize
}
