package rest

import "time"

type ArticlesRequest struct {
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
}

type RelatedRequest struct {
	Slug  string `param:"slug"`
	Limit *int   `query:"limit"`
}

type SearchRequest struct {
	Q        string `query:"q"`
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type Social struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Author struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Bio    string  `json:"bio"`
	Social *Social `json:"social,omitempty"`
}

// ArticleSummary is an article without its body, used in lists.
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

type ArticlesResponse struct {
	Articles   []ArticleSummary `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

type SearchResponse struct {
	ArticlesResponse
	Query string `json:"query"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
