package rest

import (
	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c content.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
	}
}

func NewAuthor(a content.Author) Author {
	author := Author{
		ID:     a.ID,
		Name:   a.Name,
		Avatar: a.Avatar,
		Bio:    a.Bio,
	}

	if a.Social != nil {
		author.Social = &Social{
			Twitter:  a.Social.Twitter,
			LinkedIn: a.Social.LinkedIn,
			Email:    a.Social.Email,
		}
	}

	return author
}

func NewArticleSummary(a content.Article) ArticleSummary {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		CoverImage:  a.CoverImage,
		Category:    NewCategory(a.Category),
		Author:      NewAuthor(a.Author),
		PublishedAt: a.PublishedAt,
		UpdatedAt:   a.UpdatedAt,
		ReadTime:    a.ReadTime,
		Tags:        tags,
		Featured:    a.Featured,
		Views:       a.Views,
	}
}

func NewArticle(a content.Article) Article {
	return Article{
		ArticleSummary: NewArticleSummary(a),
		Content:        a.Content,
	}
}

func NewPagination(p newsportal.Pagination) Pagination {
	return Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.PageSize,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func NewArticlesResponse(p newsportal.ArticlePage) ArticlesResponse {
	return ArticlesResponse{
		Articles:   Map(p.Articles, NewArticleSummary),
		Pagination: NewPagination(p.Pagination),
	}
}
