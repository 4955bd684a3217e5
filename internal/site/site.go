package site

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/daniilsolovey/newshub/internal/metrics"
	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

const (
	featuredLimit = 3
	snippetLength = 200
)

type Options struct {
	BaseURL      string
	SiteName     string
	PageSize     int
	RelatedLimit int
}

// Site serves the localized HTML pages and the crawler files.
type Site struct {
	manager  *newsportal.Manager
	resolver *i18n.Resolver
	metrics  *metrics.Metrics
	renderer *Renderer
	log      *slog.Logger
	opts     Options
}

func New(manager *newsportal.Manager, resolver *i18n.Resolver, m *metrics.Metrics,
	log *slog.Logger, opts Options) (*Site, error) {

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if opts.PageSize < 1 {
		opts.PageSize = newsportal.DefaultPageSize
	}
	if opts.RelatedLimit < 1 {
		opts.RelatedLimit = newsportal.DefaultRelatedLimit
	}

	return &Site{
		manager:  manager,
		resolver: resolver,
		metrics:  m,
		renderer: renderer,
		log:      log,
		opts:     opts,
	}, nil
}

// Register installs the renderer and the site routes on e. The locale guard
// and the error handler are installed separately by the caller.
func (s *Site) Register(e *echo.Echo) {
	e.Renderer = s.renderer

	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	e.GET("/sitemap.xml", s.Sitemap)
	e.GET("/manifest.webmanifest", s.Manifest)
	e.GET("/robots.txt", s.Robots)

	g := e.Group("/:locale")
	g.GET("", s.Home)
	g.GET("/category/:slug", s.Category)
	g.GET("/search", s.Search)
	g.GET("/article/:slug", s.Article)
}

func (s *Site) seo() SEO {
	return SEO{
		BaseURL:     s.opts.BaseURL,
		SiteName:    s.opts.SiteName,
		Description: s.resolver.Dictionary(string(i18n.DefaultLocale)).Home.Subtitle,
	}
}

type listQuery struct {
	Page     int
	Category string
}

type searchQuery struct {
	Q    string
	Page int
}

// bindQuery decodes the query string into dst. Malformed values are ignored
// so that a bad page number behaves like a missing one.
func (s *Site) bindQuery(c echo.Context, dst any) {
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), dst); err != nil {
		s.log.Debug("ignoring malformed query", "query", c.QueryString(), "error", err)
	}
}

// Home handles GET /:locale
func (s *Site) Home(c echo.Context) error {
	loc, err := pathLocale(c)
	if err != nil {
		return err
	}

	var q listQuery
	s.bindQuery(c, &q)

	return s.renderList(c, loc, nil, q)
}

// Category handles GET /:locale/category/:slug
func (s *Site) Category(c echo.Context) error {
	loc, err := pathLocale(c)
	if err != nil {
		return err
	}

	category, err := s.manager.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if category == nil {
		return echo.ErrNotFound
	}

	var q listQuery
	s.bindQuery(c, &q)

	return s.renderList(c, loc, category, q)
}

func (s *Site) renderList(c echo.Context, loc i18n.Locale, category *content.Category, q listQuery) error {
	ctx := c.Request().Context()
	if q.Page == 0 {
		q.Page = 1
	}

	path := ""
	if category != nil {
		q.Category = category.Slug
		path = "/category/" + category.Slug
	}

	articles, err := s.manager.Articles(ctx, newsportal.ArticleFilter{
		Page:     q.Page,
		PageSize: s.opts.PageSize,
		Category: q.Category,
	})
	if err != nil {
		return err
	}

	page, err := s.newPage(ctx, loc, path)
	if err != nil {
		return err
	}

	data := &listPage{
		Page:     page,
		Heading:  page.T.Home.Title,
		Subtitle: page.T.Home.Subtitle,
		Category: q.Category,
		Articles: articles.Articles,
		Pager: Pager{
			T:          page.T,
			Pagination: articles.Pagination,
			Base:       page.URL(path),
		},
	}

	if category != nil {
		data.Heading = page.CategoryName(*category)
		data.Subtitle = category.Description
		data.Title = data.Heading + " | " + s.opts.SiteName
		data.Description = category.Description
	} else if q.Category != "" && q.Category != newsportal.AllCategories {
		data.Pager.Query = map[string][]string{"category": {q.Category}}
	}

	if category == nil && q.Page == 1 && (q.Category == "" || q.Category == newsportal.AllCategories) {
		featured := true
		top, err := s.manager.Articles(ctx, newsportal.ArticleFilter{Page: 1, PageSize: featuredLimit, Featured: &featured})
		if err != nil {
			return err
		}
		data.Featured = top.Articles
	}

	return c.Render(http.StatusOK, "home", data)
}

// Search handles GET /:locale/search. A blank query shows suggestions.
func (s *Site) Search(c echo.Context) error {
	loc, err := pathLocale(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var q searchQuery
	s.bindQuery(c, &q)
	q.Q = strings.TrimSpace(q.Q)
	if q.Page == 0 {
		q.Page = 1
	}

	page, err := s.newPage(ctx, loc, "/search")
	if err != nil {
		return err
	}
	page.Title = page.T.Search.Title + " | " + s.opts.SiteName
	page.Description = page.T.Search.Subtitle

	data := &searchPage{Page: page, Query: q.Q}

	if q.Q == "" {
		counts, err := s.manager.CategoryCounts(ctx)
		if err != nil {
			return err
		}
		data.Counts = counts

		return c.Render(http.StatusOK, "search", data)
	}

	result, err := s.manager.Search(ctx, q.Q, q.Page, s.opts.PageSize)
	if err != nil {
		return err
	}

	data.Title = fmt.Sprintf("%s %q | %s", page.T.Search.ResultsFor, q.Q, s.opts.SiteName)
	data.Total = result.Pagination.TotalItems
	data.Pager = Pager{
		T:          page.T,
		Pagination: result.Pagination,
		Base:       page.URL("/search"),
		Query:      map[string][]string{"q": {q.Q}},
	}
	for _, a := range result.Articles {
		data.Results = append(data.Results, searchResult{
			Article: a,
			Title:   newsportal.Highlight(a.Title, q.Q),
			Excerpt: newsportal.Highlight(a.Excerpt, q.Q),
			Snippet: newsportal.Highlight(newsportal.Snippet(content.PlainText(a.Content), q.Q, snippetLength), q.Q),
		})
	}

	return c.Render(http.StatusOK, "search", data)
}

// Article handles GET /:locale/article/:slug
func (s *Site) Article(c echo.Context) error {
	loc, err := pathLocale(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	article, err := s.manager.ArticleBySlug(ctx, c.Param("slug"))
	if err != nil {
		return err
	}
	if article == nil {
		return echo.ErrNotFound
	}

	related, err := s.manager.RelatedArticles(ctx, article.ID, s.opts.RelatedLimit)
	if err != nil {
		return err
	}

	page, err := s.newPage(ctx, loc, "/article/"+article.Slug)
	if err != nil {
		return err
	}
	page.Title = article.Title + " | " + s.opts.SiteName
	page.Description = article.Excerpt
	page.OGType = "article"
	page.OGImage = s.seo().absolute(article.CoverImage)

	crumbs := []Breadcrumb{
		{Name: page.T.Navigation.Home, URL: page.URL("")},
		{Name: page.CategoryName(article.Category), URL: page.CategoryURL(article.Category.Slug)},
		{Name: article.Title, URL: page.ArticleURL(article.Slug)},
	}

	seo := s.seo()
	for _, v := range []any{seo.NewsArticle(loc, *article), seo.BreadcrumbList(crumbs)} {
		js, err := jsonLD(v)
		if err != nil {
			return err
		}
		page.StructuredData = append(page.StructuredData, js)
	}

	s.metrics.ArticleViewed(string(loc))

	return c.Render(http.StatusOK, "article", &articlePage{
		Page:        page,
		Article:     *article,
		Body:        trustedHTML(article.Content),
		Breadcrumbs: crumbs,
		Related:     related,
		Share:       shareLinks(page.Canonical, article.Title),
		Updated:     article.UpdatedAt.After(article.PublishedAt),
	})
}

// Sitemap handles GET /sitemap.xml
func (s *Site) Sitemap(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return err
	}

	urls := s.seo().Sitemap(categories, s.manager.AllArticles())

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return WriteSitemap(c.Response(), urls)
}

// Manifest handles GET /manifest.webmanifest
func (s *Site) Manifest(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/manifest+json")
	return c.JSON(http.StatusOK, s.seo().Manifest())
}

// Robots handles GET /robots.txt
func (s *Site) Robots(c echo.Context) error {
	return c.String(http.StatusOK, s.seo().Robots())
}

// newPage fills the layout data for the locale-less path.
func (s *Site) newPage(ctx context.Context, loc i18n.Locale, path string) (Page, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return Page{}, err
	}

	dict := s.resolver.Dictionary(string(loc))

	links := s.seo().alternateLinks(path)
	alternates := make([]Alternate, 0, len(links))
	for _, link := range links {
		alternates = append(alternates, Alternate{Hreflang: link.Hreflang, URL: link.Href})
	}

	website, err := jsonLD(s.seo().WebSite(loc))
	if err != nil {
		return Page{}, err
	}

	return Page{
		Locale:         loc,
		Dir:            loc.Direction(),
		Lang:           string(loc),
		T:              dict,
		SiteName:       s.opts.SiteName,
		Title:          dict.Home.Title + " | " + s.opts.SiteName,
		Description:    dict.Home.Subtitle,
		Canonical:      s.opts.BaseURL + "/" + string(loc) + path,
		Alternates:     alternates,
		OGType:         "website",
		OGLocale:       loc.OpenGraph(),
		OGImage:        s.opts.BaseURL + "/static/img/logo.svg",
		SwitchLocale:   loc.Alternate(),
		SwitchURL:      "/" + string(loc.Alternate()) + path,
		Categories:     categories,
		StructuredData: []template.JS{website},
	}, nil
}

// pathLocale validates the :locale parameter.
func pathLocale(c echo.Context) (i18n.Locale, error) {
	loc, ok := i18n.Parse(c.Param("locale"))
	if !ok {
		return "", echo.ErrNotFound
	}

	return loc, nil
}
