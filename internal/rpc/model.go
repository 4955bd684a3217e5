package rpc

import (
	"time"

	"github.com/daniilsolovey/newshub/internal/newsportal"
)

type ArticlesFilter struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=12 items per page
	PageSize *int `json:"pageSize,omitempty"`
	//category optional category slug, "all" for every category
	Category *string `json:"category,omitempty"`
	//featured optional featured flag filter
	Featured *bool `json:"featured,omitempty"`
}

func (f ArticlesFilter) ToModel() newsportal.ArticleFilter {
	filter := newsportal.ArticleFilter{
		Page:     1,
		Featured: f.Featured,
	}
	if f.Page != nil {
		filter.Page = *f.Page
	}
	if f.PageSize != nil {
		filter.PageSize = *f.PageSize
	}
	if f.Category != nil {
		filter.Category = *f.Category
	}

	return filter
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	CoverImage  string    `json:"coverImage"`
	Category    Category  `json:"category"`
	Author      Author    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ReadTime    int       `json:"readTime"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views"`
}

type Article struct {
	ArticleSummary
	Content string `json:"content"`
}

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

type ArticleList struct {
	Articles   ArticleSummaries `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

type SearchResult struct {
	ArticleList
	Query string `json:"query"`
}
