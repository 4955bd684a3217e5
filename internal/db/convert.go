package db

import "github.com/daniilsolovey/newshub/internal/content"

func NewContentCategory(c Category) content.Category {
	return content.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
	}
}

func NewContentAuthor(a Author) content.Author {
	author := content.Author{
		ID:     a.ID,
		Name:   a.Name,
		Avatar: a.Avatar,
		Bio:    a.Bio,
	}

	if a.Twitter != nil || a.LinkedIn != nil || a.Email != nil {
		author.Social = &content.Social{
			Twitter:  deref(a.Twitter),
			LinkedIn: deref(a.LinkedIn),
			Email:    deref(a.Email),
		}
	}

	return author
}

// NewContentArticle carries only the category and author IDs; content.NewStore
// resolves them.
func NewContentArticle(a Article) content.Article {
	return content.Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		CoverImage:  a.CoverImage,
		Category:    content.Category{ID: a.CategoryID},
		Author:      content.Author{ID: a.AuthorID},
		PublishedAt: a.PublishedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
		ReadTime:    a.ReadTime,
		Tags:        a.Tags,
		Featured:    a.Featured,
		Views:       a.Views,
	}
}

func NewCategory(c content.Category, order int) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
		OrderNumber: order,
	}
}

func NewAuthor(a content.Author, order int) Author {
	author := Author{
		ID:          a.ID,
		Name:        a.Name,
		Avatar:      a.Avatar,
		Bio:         a.Bio,
		OrderNumber: order,
	}

	if a.Social != nil {
		author.Twitter = ref(a.Social.Twitter)
		author.LinkedIn = ref(a.Social.LinkedIn)
		author.Email = ref(a.Social.Email)
	}

	return author
}

func NewArticle(a content.Article, order int) Article {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		CoverImage:  a.CoverImage,
		CategoryID:  a.Category.ID,
		AuthorID:    a.Author.ID,
		PublishedAt: a.PublishedAt,
		UpdatedAt:   a.UpdatedAt,
		ReadTime:    a.ReadTime,
		Tags:        tags,
		Featured:    a.Featured,
		Views:       a.Views,
		OrderNumber: order,
	}
}

func Map[From, To any](list []From, converter func(From, int) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i], i+1)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
