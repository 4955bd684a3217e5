package site

import (
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/daniilsolovey/newshub/internal/newsportal"
)

// Page carries what the layout needs on every page.
type Page struct {
	Locale   i18n.Locale
	Dir      i18n.Direction
	Lang     string
	T        *i18n.Dictionary
	SiteName string

	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	OGType      string
	OGLocale    string
	OGImage     string
	NoIndex     bool

	SwitchLocale i18n.Locale
	SwitchURL    string

	Categories     []content.Category
	StructuredData []template.JS
}

type Alternate struct {
	Hreflang string
	URL      string
}

// URL prefixes path with the page locale.
func (p Page) URL(path string) string {
	return "/" + string(p.Locale) + path
}

func (p Page) ArticleURL(slug string) string {
	return p.URL("/article/" + slug)
}

func (p Page) CategoryURL(slug string) string {
	return p.URL("/category/" + slug)
}

func (p Page) SearchURL(q string) string {
	return p.URL("/search?q=" + url.QueryEscape(q))
}

func (p Page) Date(t time.Time) string {
	return p.T.FormatDate(p.Locale, t)
}

func (p Page) ISODate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (p Page) Number(n int) string {
	return p.Locale.FormatNumber(n)
}

func (p Page) CategoryName(c content.Category) string {
	return p.T.CategoryName(c.Slug, c.Name)
}

// Card binds an article to the page for the article-card partial.
func (p Page) Card(a content.Article) Card {
	return Card{Page: p, Article: a}
}

type Card struct {
	Page
	Article content.Article
}

// Pager renders pagination links for a list URL with its current query.
type Pager struct {
	T          *i18n.Dictionary
	Pagination newsportal.Pagination
	Base       string
	Query      url.Values
}

func (p Pager) Link(page int) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))

	return p.Base + "?" + q.Encode()
}

func (p Pager) Pages() []int {
	return p.Pagination.PageNumbers()
}

func (p Pager) IsGap(n int) bool {
	return n == newsportal.Gap
}

type listPage struct {
	Page
	Heading  string
	Subtitle string
	Category string
	Featured []content.Article
	Articles []content.Article
	Pager    Pager
}

type articlePage struct {
	Page
	Article     content.Article
	Body        template.HTML
	Breadcrumbs []Breadcrumb
	Related     []content.Article
	Share       []ShareLink
	Updated     bool
}

type Breadcrumb struct {
	Name string
	URL  string
}

type ShareLink struct {
	Name string
	URL  string
}

type searchPage struct {
	Page
	Query   string
	Results []searchResult
	Total   int
	Counts  []newsportal.CategoryCount
	Pager   Pager
}

type searchResult struct {
	Article content.Article
	Title   template.HTML
	Excerpt template.HTML
	Snippet template.HTML
}

type errorPage struct {
	Page
	Status int
}
