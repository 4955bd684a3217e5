package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const maxPageSize = 100

var (
	errInvalidPage     = errors.New("page must be positive")
	errInvalidPageSize = errors.New("pageSize must be between 1 and 100")
	errInvalidLimit    = errors.New("limit must be positive")
	errBlankQuery      = errors.New("query must not be blank")
)

type ArticleHandler struct {
	manager  *newsportal.Manager
	log      *slog.Logger
	pageSize int
	related  int
}

func NewArticleHandler(manager *newsportal.Manager, log *slog.Logger, pageSize, relatedLimit int) *ArticleHandler {
	if pageSize < 1 {
		pageSize = newsportal.DefaultPageSize
	}
	if relatedLimit < 1 {
		relatedLimit = newsportal.DefaultRelatedLimit
	}

	return &ArticleHandler{
		manager:  manager,
		log:      log,
		pageSize: pageSize,
		related:  relatedLimit,
	}
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}

	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// Articles handles GET /api/v1/articles
// @Summary List articles
// @Description Returns articles newest first, optionally filtered by category slug and featured flag
// @Tags articles
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 12, max: 100)"
// @Param category query string false "Category slug, 'all' for every category"
// @Param featured query bool false "Featured flag filter"
// @Success 200 {object} rest.ArticlesResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/v1/articles [get]
func (h *ArticleHandler) Articles(c echo.Context) error {
	var req ArticlesRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, pageSize, err := h.pageParams(req.Page, req.PageSize)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	result, err := h.manager.Articles(c.Request().Context(), newsportal.ArticleFilter{
		Page:     page,
		PageSize: pageSize,
		Category: req.Category,
		Featured: req.Featured,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticlesResponse(result))
}

// ArticleBySlug handles GET /api/v1/articles/:slug
// @Summary Get article by slug
// @Description Returns a single article with its body
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/v1/articles/{slug} [get]
func (h *ArticleHandler) ArticleBySlug(c echo.Context) error {
	article, err := h.manager.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return h.handleError(c, nil, http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// RelatedArticles handles GET /api/v1/articles/:slug/related
// @Summary Get related articles
// @Description Returns other articles of the same category, newest first
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Param limit query int false "Maximum number of articles (default: 3)"
// @Success 200 {array} rest.ArticleSummary
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/articles/{slug}/related [get]
func (h *ArticleHandler) RelatedArticles(c echo.Context) error {
	var req RelatedRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	limit := h.related
	if req.Limit != nil {
		if *req.Limit < 1 {
			return h.handleError(c, errInvalidLimit, http.StatusBadRequest, errInvalidLimit.Error())
		}
		limit = *req.Limit
	}

	ctx := c.Request().Context()
	article, err := h.manager.ArticleBySlug(ctx, req.Slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return h.handleError(c, nil, http.StatusNotFound, "article not found")
	}

	related, err := h.manager.RelatedArticles(ctx, article.ID, limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(related, NewArticleSummary))
}

// Search handles GET /api/v1/search
// @Summary Search articles
// @Description Case-insensitive substring search over title, excerpt, body and tags
// @Tags articles
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 12, max: 100)"
// @Success 200 {object} rest.SearchResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/v1/search [get]
func (h *ArticleHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	req.Q = strings.TrimSpace(req.Q)
	if req.Q == "" {
		return h.handleError(c, errBlankQuery, http.StatusBadRequest, errBlankQuery.Error())
	}

	page, pageSize, err := h.pageParams(req.Page, req.PageSize)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	result, err := h.manager.Search(c.Request().Context(), req.Q, page, pageSize)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SearchResponse{
		ArticlesResponse: NewArticlesResponse(result.ArticlePage),
		Query:            result.Query,
	})
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/categories [get]
func (h *ArticleHandler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Authors handles GET /api/v1/authors
// @Summary Get all authors
// @Tags authors
// @Produce json
// @Success 200 {array} rest.Author
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/authors [get]
func (h *ArticleHandler) Authors(c echo.Context) error {
	authors, err := h.manager.Authors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(authors, NewAuthor))
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *ArticleHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *ArticleHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger doc is not available")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func (h *ArticleHandler) pageParams(page, pageSize *int) (int, int, error) {
	p, size := 1, h.pageSize

	if page != nil {
		if *page < 1 {
			return 0, 0, errInvalidPage
		}
		p = *page
	}

	if pageSize != nil {
		if *pageSize < 1 || *pageSize > maxPageSize {
			return 0, 0, errInvalidPageSize
		}
		size = *pageSize
	}

	return p, size, nil
}
