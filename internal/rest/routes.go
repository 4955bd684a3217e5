package rest

import "github.com/labstack/echo/v4"

const (
	apiV1Prefix = "/api/v1"

	articlesPath   = "/articles"
	articlePath    = "/articles/:slug"
	relatedPath    = "/articles/:slug/related"
	searchPath     = "/search"
	categoriesPath = "/categories"
	authorsPath    = "/authors"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
)

// RegisterRoutes registers the JSON API, health check and OpenAPI document.
func (h *ArticleHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group(apiV1Prefix)
	api.GET(articlesPath, h.Articles)
	api.GET(articlePath, h.ArticleBySlug)
	api.GET(relatedPath, h.RelatedArticles)
	api.GET(searchPath, h.Search)
	api.GET(categoriesPath, h.Categories)
	api.GET(authorsPath, h.Authors)

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)
}
