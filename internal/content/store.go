package content

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySlug        = errors.New("empty slug")
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrUnknownReference = errors.New("unknown reference")
)

// Store is the immutable, process-resident collection of articles, authors
// and categories. It is safe for concurrent use because nothing mutates it
// after NewStore returns. Slices returned by its accessors must not be modified.
type Store struct {
	articles   []Article
	authors    []Author
	categories []Category

	articleBySlug  map[string]int
	articleByID    map[string]int
	categoryBySlug map[string]int
}

// NewStore validates the records and builds the lookup indexes. Article
// category and author references are resolved against the given lists, so the
// copies embedded in articles always match the canonical records.
func NewStore(categories []Category, authors []Author, articles []Article) (*Store, error) {
	s := &Store{
		articles:       make([]Article, 0, len(articles)),
		authors:        append([]Author(nil), authors...),
		categories:     append([]Category(nil), categories...),
		articleBySlug:  make(map[string]int, len(articles)),
		articleByID:    make(map[string]int, len(articles)),
		categoryBySlug: make(map[string]int, len(categories)),
	}

	categoryByID := make(map[string]Category, len(categories))
	for i, c := range categories {
		if c.Slug == "" {
			return nil, fmt.Errorf("category %q: %w", c.ID, ErrEmptySlug)
		}
		if _, ok := s.categoryBySlug[c.Slug]; ok {
			return nil, fmt.Errorf("category %q: %w", c.Slug, ErrDuplicateSlug)
		}
		if _, ok := categoryByID[c.ID]; ok {
			return nil, fmt.Errorf("category %q: %w", c.ID, ErrDuplicateID)
		}
		s.categoryBySlug[c.Slug] = i
		categoryByID[c.ID] = c
	}

	authorByID := make(map[string]Author, len(authors))
	for _, a := range authors {
		if _, ok := authorByID[a.ID]; ok {
			return nil, fmt.Errorf("author %q: %w", a.ID, ErrDuplicateID)
		}
		authorByID[a.ID] = a
	}

	for _, a := range articles {
		if a.Slug == "" {
			return nil, fmt.Errorf("article %q: %w", a.ID, ErrEmptySlug)
		}
		if _, ok := s.articleBySlug[a.Slug]; ok {
			return nil, fmt.Errorf("article %q: %w", a.Slug, ErrDuplicateSlug)
		}
		if _, ok := s.articleByID[a.ID]; ok {
			return nil, fmt.Errorf("article %q: %w", a.ID, ErrDuplicateID)
		}

		category, ok := categoryByID[a.Category.ID]
		if !ok {
			return nil, fmt.Errorf("article %q category %q: %w", a.Slug, a.Category.ID, ErrUnknownReference)
		}
		author, ok := authorByID[a.Author.ID]
		if !ok {
			return nil, fmt.Errorf("article %q author %q: %w", a.Slug, a.Author.ID, ErrUnknownReference)
		}

		a.Category = category
		a.Author = author
		a.Tags = append([]string(nil), a.Tags...)
		if a.ReadTime <= 0 {
			a.ReadTime = ReadTime(a.Content)
		}

		s.articleBySlug[a.Slug] = len(s.articles)
		s.articleByID[a.ID] = len(s.articles)
		s.articles = append(s.articles, a)
	}

	return s, nil
}

// Articles returns all articles in insertion order.
func (s *Store) Articles() []Article {
	return s.articles
}

func (s *Store) Authors() []Author {
	return s.authors
}

func (s *Store) Categories() []Category {
	return s.categories
}

func (s *Store) Len() int {
	return len(s.articles)
}

func (s *Store) ArticleBySlug(slug string) (Article, bool) {
	i, ok := s.articleBySlug[slug]
	if !ok {
		return Article{}, false
	}

	return s.articles[i], true
}

func (s *Store) ArticleByID(id string) (Article, bool) {
	i, ok := s.articleByID[id]
	if !ok {
		return Article{}, false
	}

	return s.articles[i], true
}

func (s *Store) CategoryBySlug(slug string) (Category, bool) {
	i, ok := s.categoryBySlug[slug]
	if !ok {
		return Category{}, false
	}

	return s.categories[i], true
}
