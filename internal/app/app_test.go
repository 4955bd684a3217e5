package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/newshub/config"
	_ "github.com/daniilsolovey/newshub/docs"
	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *App {
	t.Helper()

	store, err := content.NewSeedStore(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	a, err := NewWithStore(config.Default(), store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return a
}

func serve(a *App, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	return rec
}

func TestApp_Routes(t *testing.T) {
	a := setupApp(t)

	tests := []struct {
		name        string
		method      string
		target      string
		status      int
		contentType string
	}{
		{"RootRedirects", http.MethodGet, "/", http.StatusTemporaryRedirect, ""},
		{"HomeEnglish", http.MethodGet, "/en", http.StatusOK, "text/html"},
		{"HomeArabic", http.MethodGet, "/ar", http.StatusOK, "text/html"},
		{"Article", http.MethodGet, "/ar/article/ai-breakthrough-machine-learning-2024", http.StatusOK, "text/html"},
		{"UnknownArticlePage", http.MethodGet, "/en/article/nonexistent-slug", http.StatusNotFound, "text/html"},
		{"APIArticles", http.MethodGet, "/api/v1/articles", http.StatusOK, "application/json"},
		{"APIUnknownArticle", http.MethodGet, "/api/v1/articles/nonexistent-slug", http.StatusNotFound, "application/json"},
		{"APIUnknownRoute", http.MethodGet, "/api/v1/nothing", http.StatusNotFound, "application/json"},
		{"Health", http.MethodGet, "/health", http.StatusOK, "application/json"},
		{"Swagger", http.MethodGet, "/swagger/doc.json", http.StatusOK, "application/json"},
		{"Sitemap", http.MethodGet, "/sitemap.xml", http.StatusOK, "application/xml"},
		{"Manifest", http.MethodGet, "/manifest.webmanifest", http.StatusOK, "application/manifest+json"},
		{"Robots", http.MethodGet, "/robots.txt", http.StatusOK, "text/plain"},
		{"Stylesheet", http.MethodGet, "/static/css/site.css", http.StatusOK, "text/css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(a, tt.method, tt.target, nil)

			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType),
					"content type %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestApp_RootRedirectKeepsQuery(t *testing.T) {
	a := setupApp(t)

	rec := serve(a, http.MethodGet, "/search?q=ai", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/en/search?q=ai", rec.Header().Get("Location"))
}

func TestApp_RPC(t *testing.T) {
	a := setupApp(t)

	body := `{"jsonrpc":"2.0","id":1,"method":"articles.byslug","params":{"slug":"ai-breakthrough-machine-learning-2024"}}`
	rec := serve(a, http.MethodPost, "/rpc", strings.NewReader(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"result"`
		Error *struct {
			Code int `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
	assert.Equal(t, "1", resp.Result.ID)
}

func TestApp_Metrics(t *testing.T) {
	a := setupApp(t)

	serve(a, http.MethodGet, "/en/article/ai-breakthrough-machine-learning-2024", nil)
	serve(a, http.MethodGet, "/api/v1/categories", nil)

	rec := serve(a, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `newshub_store_articles 24`)
	assert.Contains(t, body, `newshub_article_views_total{locale="en"} 1`)
	assert.Contains(t, body, `newshub_http_requests_total{method="GET",route="/api/v1/categories",status="200"} 1`)
}
