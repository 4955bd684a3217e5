// nolint
//
//lint:file-ignore U1000 ignore unused code, tableName is read by go-pg
package db

import (
	"time"
)

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Author struct {
		Name, Alias string
	}
	Article struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Author: struct {
		Name, Alias string
	}{
		Name:  "authors",
		Alias: "t",
	},
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          string `pg:"categoryId,pk"`
	Name        string `pg:"name,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	Color       string `pg:"color,use_zero"`
	Description string `pg:"description,use_zero"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID          string  `pg:"authorId,pk"`
	Name        string  `pg:"name,use_zero"`
	Avatar      string  `pg:"avatar,use_zero"`
	Bio         string  `pg:"bio,use_zero"`
	Twitter     *string `pg:"twitter"`
	LinkedIn    *string `pg:"linkedin"`
	Email       *string `pg:"email"`
	OrderNumber int     `pg:"orderNumber,use_zero"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          string    `pg:"articleId,pk"`
	Title       string    `pg:"title,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Excerpt     string    `pg:"excerpt,use_zero"`
	Content     string    `pg:"content,use_zero"`
	CoverImage  string    `pg:"coverImage,use_zero"`
	CategoryID  string    `pg:"categoryId,use_zero"`
	AuthorID    string    `pg:"authorId,use_zero"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`
	ReadTime    int       `pg:"readTime,use_zero"`
	Tags        []string  `pg:"tags,array,use_zero"`
	Featured    bool      `pg:"featured,use_zero"`
	Views       int       `pg:"views,use_zero"`
	OrderNumber int       `pg:"orderNumber,use_zero"`
}
