package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/labstack/echo/v4"
)

// apiPrefixes get JSON error bodies instead of error pages.
var apiPrefixes = []string{"/api", "/rpc", "/health", "/metrics", "/swagger"}

// ErrorHandler renders the localized not-found page for 404s and the error
// page for everything else. API paths get {"error": "..."} instead.
func (s *Site) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
	}

	path := c.Request().URL.Path
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed", "path", path, "error", err)
	}

	if isAPIPath(path) {
		if err := c.JSON(code, map[string]string{"error": message}); err != nil {
			s.log.Error("failed to write error response", "error", err)
		}
		return
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			s.log.Error("failed to write error response", "error", err)
		}
		return
	}

	loc, ok := localeOf(path)
	if !ok {
		loc = i18n.DefaultLocale
	}

	name := "error"
	if code == http.StatusNotFound {
		name = "not-found"
	}

	if err := s.renderError(c, loc, name, code); err != nil {
		s.log.Error("failed to render error page", "error", err)
		_ = c.String(code, message)
	}
}

func (s *Site) renderError(c echo.Context, loc i18n.Locale, name string, code int) error {
	page, err := s.newPage(c.Request().Context(), loc, "")
	if err != nil {
		return err
	}

	title := page.T.Errors.Server.Title
	page.Description = page.T.Errors.Server.Description
	if code == http.StatusNotFound {
		title = page.T.Errors.NotFound.Title
		page.Description = page.T.Errors.NotFound.Description
	}
	page.Title = title + " | " + s.opts.SiteName
	page.NoIndex = true

	return c.Render(code, name, &errorPage{Page: page, Status: code})
}

func isAPIPath(path string) bool {
	for _, prefix := range apiPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}
