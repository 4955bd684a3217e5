package site

import (
	"net/http"
	"strings"

	"github.com/daniilsolovey/newshub/internal/i18n"
	"github.com/labstack/echo/v4"
)

// passThrough lists path prefixes served without a locale.
var passThrough = []string{"/static", "/api", "/rpc", "/metrics", "/health", "/swagger"}

// LocaleGuard redirects every page path that lacks a supported locale prefix
// to the same path under the default locale. Register it with echo.Pre.
func LocaleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			target, ok := localizedPath(c.Request().URL.Path)
			if !ok {
				return next(c)
			}

			if q := c.Request().URL.RawQuery; q != "" {
				target += "?" + q
			}

			return c.Redirect(http.StatusTemporaryRedirect, target)
		}
	}
}

// localizedPath returns the redirect target for path and whether a redirect
// is needed at all.
func localizedPath(path string) (string, bool) {
	for _, prefix := range passThrough {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return "", false
		}
	}

	if strings.Contains(path[strings.LastIndex(path, "/")+1:], ".") {
		return "", false
	}

	if _, ok := localeOf(path); ok {
		return "", false
	}

	if path == "" || path == "/" {
		return "/" + string(i18n.DefaultLocale), true
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return "/" + string(i18n.DefaultLocale) + path, true
}

// localeOf reports the locale prefix of path, if any.
func localeOf(path string) (i18n.Locale, bool) {
	for _, l := range i18n.Locales {
		prefix := "/" + string(l)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return l, true
		}
	}

	return "", false
}
