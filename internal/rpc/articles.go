package rpc

import (
	"context"
	"strings"

	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

const maxPageSize = 100

// ArticleService provides RPC methods for reading articles.
type ArticleService struct {
	zenrpc.Service
	manager *newsportal.Manager
	related int
}

func NewArticleService(manager *newsportal.Manager, relatedLimit int) *ArticleService {
	if relatedLimit < 1 {
		relatedLimit = newsportal.DefaultRelatedLimit
	}

	return &ArticleService{manager: manager, related: relatedLimit}
}

// List retrieves articles sorted by publishedAt DESC with optional category and featured filters.
// Returns article summaries (without content) and the pagination descriptor.
//
//zenrpc:filter page, pageSize, category and featured filters
//zenrpc:return page of article summaries
//zenrpc:400 invalid page or pageSize
//zenrpc:500 internal server error
func (s ArticleService) List(ctx context.Context, filter ArticlesFilter) (*ArticleList, error) {
	if err := validatePage(filter.Page, filter.PageSize); err != nil {
		return nil, err
	}

	page, err := s.manager.Articles(ctx, filter.ToModel())
	if err != nil {
		return nil, err
	}

	list := NewArticleList(page)
	return &list, nil
}

// BySlug retrieves a single article by slug with full content.
//
//zenrpc:slug article slug
//zenrpc:return article with content
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s ArticleService) BySlug(ctx context.Context, slug string) (*Article, error) {
	a, err := s.manager.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	article := NewArticle(*a)
	return &article, nil
}

// Related retrieves other articles of the same category, newest first.
//
//zenrpc:slug source article slug
//zenrpc:limit maximum number of articles, configured related limit when omitted
//zenrpc:return related article summaries
//zenrpc:400 limit must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s ArticleService) Related(ctx context.Context, slug string, limit *int) (ArticleSummaries, error) {
	n := s.related
	if limit != nil {
		if *limit < 1 {
			return nil, zenrpc.NewStringError(400, "limit must be positive")
		}
		n = *limit
	}

	a, err := s.manager.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	related, err := s.manager.RelatedArticles(ctx, a.ID, n)
	if err != nil {
		return nil, err
	}

	return NewArticleSummaries(related), nil
}

// Search matches the query case-insensitively against title, excerpt, content and tags.
//
//zenrpc:query search query
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=12 items per page
//zenrpc:return matching article summaries
//zenrpc:400 blank query or invalid paging
//zenrpc:500 internal server error
func (s ArticleService) Search(ctx context.Context, query string, page, pageSize *int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, zenrpc.NewStringError(400, "query must not be blank")
	}

	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}

	p, size := 1, 0
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}

	result, err := s.manager.Search(ctx, query, p, size)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		ArticleList: NewArticleList(result.ArticlePage),
		Query:       result.Query,
	}, nil
}

// Categories retrieves all categories in display order.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s ArticleService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// Authors retrieves all authors.
//
//zenrpc:return list of authors
//zenrpc:500 internal server error
func (s ArticleService) Authors(ctx context.Context) (Authors, error) {
	authors, err := s.manager.Authors(ctx)
	if err != nil {
		return nil, err
	}

	return NewAuthors(authors), nil
}

func validatePage(page, pageSize *int) error {
	if page != nil && *page < 1 {
		return zenrpc.NewStringError(400, "page must be positive")
	}
	if pageSize != nil && (*pageSize < 1 || *pageSize > maxPageSize) {
		return zenrpc.NewStringError(400, "pageSize must be between 1 and 100")
	}

	return nil
}
