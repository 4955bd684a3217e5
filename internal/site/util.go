package site

import (
	"html/template"
	"net/url"
)

// trustedHTML marks article bodies as safe. Bodies come from the content
// store, never from request input.
func trustedHTML(s string) template.HTML {
	return template.HTML(s)
}

func shareLinks(pageURL, title string) []ShareLink {
	u := url.QueryEscape(pageURL)
	t := url.QueryEscape(title)

	return []ShareLink{
		{Name: "Twitter", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + t},
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
		{Name: "Email", URL: "mailto:?subject=" + url.PathEscape(title) + "&body=" + u},
	}
}
