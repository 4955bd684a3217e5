package site

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/daniilsolovey/newshub/internal/metrics"
	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://newshub.example.com"

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := content.NewSeedStore(baseTime)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(
		newsportal.NewManager(store, 0),
		i18n.NewResolver(i18n.EmbeddedLoader, logger),
		metrics.New(),
		logger,
		Options{BaseURL: testBaseURL, SiteName: "NewsHub", PageSize: 12, RelatedLimit: 3},
	)
	require.NoError(t, err)

	e := echo.New()
	e.Pre(LocaleGuard())
	e.HTTPErrorHandler = s.ErrorHandler
	s.Register(e)

	e.GET("/:locale/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	return e
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	return doc
}

func TestSite_Home(t *testing.T) {
	e := newTestServer(t)

	t.Run("EnglishIsLeftToRight", func(t *testing.T) {
		rec := get(t, e, "/en")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		html := doc.Find("html")
		assert.Equal(t, "en", html.AttrOr("lang", ""))
		assert.Equal(t, "ltr", html.AttrOr("dir", ""))
		assert.Equal(t, "Latest News", doc.Find(".page-heading h1").Text())
		assert.Equal(t, testBaseURL+"/en", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
		assert.Equal(t, 3, doc.Find(`link[rel="alternate"][hreflang]`).Length())
		assert.Equal(t, "/ar", doc.Find(".language-switcher").AttrOr("href", ""))
	})

	t.Run("ArabicIsRightToLeft", func(t *testing.T) {
		rec := get(t, e, "/ar")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
		assert.Equal(t, "آخر الأخبار", doc.Find(".page-heading h1").Text())
		assert.Equal(t, "ar_SA", doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""))
	})

	t.Run("FirstPageShowsFeaturedAndGrid", func(t *testing.T) {
		doc := document(t, get(t, e, "/en"))

		assert.Equal(t, 3, doc.Find(".hero .article-card").Length())
		assert.Equal(t, 12, doc.Find("#latest-news .news-grid .article-card").Length())
		assert.Equal(t, "/en?page=2", doc.Find(".pagination .page-next").AttrOr("href", ""))
		assert.Equal(t, 0, doc.Find(".pagination .page-prev").Length())
	})

	t.Run("SecondPageHasNoHero", func(t *testing.T) {
		doc := document(t, get(t, e, "/en?page=2"))

		assert.Equal(t, 0, doc.Find(".hero").Length())
		assert.Equal(t, 12, doc.Find("#latest-news .article-card").Length())
		assert.Equal(t, "/en?page=1", doc.Find(".pagination .page-prev").AttrOr("href", ""))
	})

	t.Run("CategoryQueryFilters", func(t *testing.T) {
		doc := document(t, get(t, e, "/en?category=technology"))

		cards := doc.Find("#latest-news .article-card")
		assert.Equal(t, 4, cards.Length())
		cards.Each(func(_ int, s *goquery.Selection) {
			assert.Equal(t, "/en/category/technology", s.Find(".category-badge").AttrOr("href", ""))
		})
		assert.Equal(t, 0, doc.Find(".pagination").Length())
		assert.Equal(t, "/en/category/technology", doc.Find(".category-filter a.active").AttrOr("href", ""))
	})

	t.Run("MalformedPageFallsBackToFirst", func(t *testing.T) {
		rec := get(t, e, "/en?page=abc")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 12, document(t, rec).Find("#latest-news .article-card").Length())
	})

	t.Run("OutOfRangePageIsEmpty", func(t *testing.T) {
		rec := get(t, e, "/en?page=9")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, 0, doc.Find("#latest-news .article-card").Length())
		assert.Equal(t, 1, doc.Find("#latest-news .empty").Length())
	})

	t.Run("HugePageIsEmpty", func(t *testing.T) {
		for _, target := range []string{
			"/en?page=9223372036854775807",
			"/en?page=4611686018427387905",
			"/en/search?q=news&page=9223372036854775807",
		} {
			rec := get(t, e, target)
			require.Equal(t, http.StatusOK, rec.Code, target)

			doc := document(t, rec)
			assert.Equal(t, 0, doc.Find(".article-card, .search-result").Length(), target)
		}
	})

	t.Run("WebSiteStructuredData", func(t *testing.T) {
		doc := document(t, get(t, e, "/ar"))

		var ld map[string]any
		require.NoError(t, json.Unmarshal([]byte(doc.Find(`script[type="application/ld+json"]`).First().Text()), &ld))
		assert.Equal(t, "WebSite", ld["@type"])
		action := ld["potentialAction"].(map[string]any)
		assert.Equal(t, "SearchAction", action["@type"])
		assert.Equal(t, testBaseURL+"/ar/search?q={search_term_string}", action["target"].(map[string]any)["urlTemplate"])
	})
}

func TestSite_Category(t *testing.T) {
	e := newTestServer(t)

	t.Run("KnownSlug", func(t *testing.T) {
		rec := get(t, e, "/en/category/science")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, "Science", doc.Find(".page-heading h1").Text())
		assert.Equal(t, 4, doc.Find("#latest-news .article-card").Length())
		assert.Equal(t, testBaseURL+"/en/category/science", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	})

	t.Run("TranslatedName", func(t *testing.T) {
		doc := document(t, get(t, e, "/ar/category/science"))
		assert.NotEqual(t, "Science", doc.Find(".page-heading h1").Text())
	})

	t.Run("UnknownSlugIsNotFound", func(t *testing.T) {
		rec := get(t, e, "/en/category/politics")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Page Not Found", document(t, rec).Find(".not-found h1").Text())
	})
}

func TestSite_Article(t *testing.T) {
	e := newTestServer(t)

	t.Run("RendersArticle", func(t *testing.T) {
		rec := get(t, e, "/en/article/ai-breakthrough-machine-learning-2024")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, "Revolutionary AI Breakthrough Changes Everything We Know About Machine Learning",
			doc.Find(".article-title").Text())
		assert.Equal(t, "article", doc.Find(`meta[property="og:type"]`).AttrOr("content", ""))
		assert.Equal(t, 3, doc.Find(".breadcrumbs li").Length())
		assert.Equal(t, 3, doc.Find(".related-articles .article-card").Length())
		assert.Equal(t, 4, doc.Find(".article-tags li").Length())
		assert.Positive(t, doc.Find(".article-body p").Length())
		assert.Equal(t, "Sarah Johnson", doc.Find(".author-card .author-name").Text())
	})

	t.Run("RelatedExcludesSource", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/article/ai-breakthrough-machine-learning-2024"))
		doc.Find(".related-articles .card-title a").Each(func(_ int, s *goquery.Selection) {
			assert.NotEqual(t, "/en/article/ai-breakthrough-machine-learning-2024", s.AttrOr("href", ""))
		})
	})

	t.Run("StructuredData", func(t *testing.T) {
		doc := document(t, get(t, e, "/ar/article/sample-article-7-news-story"))

		types := make([]string, 0, 3)
		doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
			var ld map[string]any
			require.NoError(t, json.Unmarshal([]byte(s.Text()), &ld))
			types = append(types, ld["@type"].(string))

			if ld["@type"] == "NewsArticle" {
				assert.Equal(t, "ar-SA", ld["inLanguage"])
				assert.Equal(t, testBaseURL+"/ar/article/sample-article-7-news-story",
					ld["mainEntityOfPage"].(map[string]any)["@id"])
			}
			if ld["@type"] == "BreadcrumbList" {
				assert.Len(t, ld["itemListElement"], 3)
			}
		})
		assert.Equal(t, []string{"WebSite", "NewsArticle", "BreadcrumbList"}, types)
	})

	t.Run("UnknownSlugIsLocalizedNotFound", func(t *testing.T) {
		rec := get(t, e, "/ar/article/nonexistent-slug")
		require.Equal(t, http.StatusNotFound, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
		assert.Equal(t, "الصفحة غير موجودة", doc.Find(".not-found h1").Text())
		assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	})
}

func TestSite_Search(t *testing.T) {
	e := newTestServer(t)

	t.Run("BlankQueryShowsSuggestions", func(t *testing.T) {
		rec := get(t, e, "/en/search")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, 6, doc.Find(".search-suggestions .categories li").Length())
		assert.Contains(t, doc.Find(".search-suggestions .categories li").First().Text(), "4")
		assert.Equal(t, 0, doc.Find(".search-result").Length())
	})

	t.Run("WhitespaceQueryShowsSuggestions", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/search?q=+++"))
		assert.Equal(t, 1, doc.Find(".search-suggestions").Length())
	})

	t.Run("MatchIsHighlighted", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/search?q=Tag17"))

		results := doc.Find(".search-result")
		require.Equal(t, 1, results.Length())
		assert.Equal(t, "/en/article/sample-article-17-news-story", results.Find("h2 a").AttrOr("href", ""))
		assert.Equal(t, "1", doc.Find(".results-count").Text())
	})

	t.Run("TitleMatchMarked", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/search?q=revolutionary"))
		assert.Equal(t, "Revolutionary", doc.Find(".search-result h2 mark.search-highlight").First().Text())
	})

	t.Run("PaginationKeepsQuery", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/search?q=sample"))
		assert.Equal(t, 12, doc.Find(".search-result").Length())
		assert.Equal(t, "/en/search?page=2&q=sample", doc.Find(".pagination .page-next").AttrOr("href", ""))
	})

	t.Run("NoResults", func(t *testing.T) {
		doc := document(t, get(t, e, "/en/search?q=%3Cscript%3Ezzz"))
		assert.Equal(t, 1, doc.Find(".search-empty").Length())
		assert.Equal(t, "<script>zzz", doc.Find(".search-form input[name=q]").AttrOr("value", ""))
	})
}

func TestSite_LocaleGuard(t *testing.T) {
	e := newTestServer(t)

	for _, tt := range []struct {
		name, target, location string
	}{
		{"Root", "/", "/en"},
		{"PageWithoutLocale", "/search?q=ai", "/en/search?q=ai"},
		{"ArticleWithoutLocale", "/article/some-slug", "/en/article/some-slug"},
		{"UnsupportedLocale", "/fr", "/en/fr"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, e, tt.target)
			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
		})
	}

	t.Run("PassThrough", func(t *testing.T) {
		for _, target := range []string{"/en", "/ar/search", "/static/css/site.css", "/robots.txt", "/sitemap.xml"} {
			assert.Equal(t, http.StatusOK, get(t, e, target).Code, target)
		}
	})
}

func TestLocalizedPath(t *testing.T) {
	for _, tt := range []struct {
		path     string
		target   string
		redirect bool
	}{
		{"/", "/en", true},
		{"", "/en", true},
		{"/en", "", false},
		{"/ar", "", false},
		{"/en/article/x", "", false},
		{"/english", "/en/english", true},
		{"/arabic/news", "/en/arabic/news", true},
		{"/api/v1/articles", "", false},
		{"/apiv1", "/en/apiv1", true},
		{"/rpc", "", false},
		{"/static/css/site.css", "", false},
		{"/favicon.ico", "", false},
		{"/docs/guide.pdf", "", false},
		{"/v1.2/news", "/en/v1.2/news", true},
	} {
		target, redirect := localizedPath(tt.path)
		assert.Equal(t, tt.redirect, redirect, tt.path)
		assert.Equal(t, tt.target, target, tt.path)
	}
}

func TestSite_Errors(t *testing.T) {
	e := newTestServer(t)

	t.Run("HandlerErrorRendersErrorPage", func(t *testing.T) {
		rec := get(t, e, "/ar/boom")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, "500", doc.Find(".error-page .status").Text())
		assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
	})

	t.Run("UnknownPageIsNotFound", func(t *testing.T) {
		rec := get(t, e, "/en/unknown/path")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 1, document(t, rec).Find(".not-found").Length())
	})

	t.Run("APIPathGetsJSON", func(t *testing.T) {
		rec := get(t, e, "/api/v1/nothing")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
	})
}

func TestSite_Sitemap(t *testing.T) {
	e := newTestServer(t)

	rec := get(t, e, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")

	var set struct {
		URLs []struct {
			Loc     string `xml:"loc"`
			LastMod string `xml:"lastmod"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))

	// 2 locales × (home + search + 6 categories + 24 articles)
	assert.Len(t, set.URLs, 64)

	locs := make(map[string]string, len(set.URLs))
	for _, u := range set.URLs {
		locs[u.Loc] = u.LastMod
	}
	assert.Contains(t, locs, testBaseURL+"/en")
	assert.Contains(t, locs, testBaseURL+"/ar/search")
	assert.Contains(t, locs, testBaseURL+"/ar/category/health")
	assert.Equal(t, "2024-01-15", locs[testBaseURL+"/en/article/ai-breakthrough-machine-learning-2024"])
	assert.Contains(t, rec.Body.String(), `hreflang="x-default"`)

	var pageLangs []string
	document(t, get(t, e, "/en")).Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, s *goquery.Selection) {
		pageLangs = append(pageLangs, s.AttrOr("hreflang", ""))
	})
	assert.Equal(t, []string{"en-US", "ar-SA", "x-default"}, pageLangs)
	for _, lang := range pageLangs {
		assert.Contains(t, rec.Body.String(), `hreflang="`+lang+`"`)
	}
	assert.NotContains(t, rec.Body.String(), `hreflang="ar"`)
}

func TestSite_ManifestAndRobots(t *testing.T) {
	e := newTestServer(t)

	t.Run("Manifest", func(t *testing.T) {
		rec := get(t, e, "/manifest.webmanifest")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/manifest+json", rec.Header().Get(echo.HeaderContentType))

		var m Manifest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		assert.Equal(t, "/en", m.StartURL)
		assert.Equal(t, "standalone", m.Display)
		assert.Len(t, m.Icons, 2)
	})

	t.Run("Robots", func(t *testing.T) {
		rec := get(t, e, "/robots.txt")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sitemap: "+testBaseURL+"/sitemap.xml")
	})
}
