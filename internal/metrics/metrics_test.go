package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/:locale/article/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})

	for _, path := range []string{"/en/article/a", "/ar/article/b", "/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	t.Run("GroupsByRoutePattern", func(t *testing.T) {
		got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/:locale/article/:slug", "200"))
		assert.Equal(t, 2.0, got)
	})

	t.Run("UsesHTTPErrorCode", func(t *testing.T) {
		got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/missing", "404"))
		assert.Equal(t, 1.0, got)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ArticleViewed("ar")
	m.RPCCall("articles.list", 0)
	m.SetStoreSize(24)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `newshub_article_views_total{locale="ar"} 1`)
	assert.Contains(t, body, `newshub_rpc_calls_total{code="0",method="articles.list"} 1`)
	assert.Contains(t, body, "newshub_store_articles 24")
}
