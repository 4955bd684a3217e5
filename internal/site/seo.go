package site

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/i18n"
)

const schemaContext = "https://schema.org"

type organization struct {
	Type string      `json:"@type"`
	Name string      `json:"name"`
	Logo imageObject `json:"logo"`
}

type imageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type webSiteLD struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	URL             string       `json:"url"`
	InLanguage      string       `json:"inLanguage"`
	PotentialAction searchAction `json:"potentialAction"`
	Publisher       organization `json:"publisher"`
}

type searchAction struct {
	Type       string     `json:"@type"`
	Target     entryPoint `json:"target"`
	QueryInput string     `json:"query-input"`
}

type entryPoint struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

type newsArticleLD struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Image            []string     `json:"image"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	Author           person       `json:"author"`
	Publisher        organization `json:"publisher"`
	MainEntityOfPage webPage      `json:"mainEntityOfPage"`
	ArticleSection   string       `json:"articleSection"`
	Keywords         string       `json:"keywords"`
	WordCount        int          `json:"wordCount"`
	TimeRequired     string       `json:"timeRequired"`
	InLanguage       string       `json:"inLanguage"`
}

type person struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

type webPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type breadcrumbListLD struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []listItem `json:"itemListElement"`
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// SEO builds the machine-readable descriptors of the site.
type SEO struct {
	BaseURL     string
	SiteName    string
	Description string
}

func (s SEO) publisher() organization {
	return organization{
		Type: "Organization",
		Name: s.SiteName,
		Logo: imageObject{Type: "ImageObject", URL: s.BaseURL + "/static/img/logo.svg"},
	}
}

func (s SEO) WebSite(l i18n.Locale) any {
	return webSiteLD{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        s.SiteName,
		Description: s.Description,
		URL:         s.BaseURL + "/" + string(l),
		InLanguage:  l.Tag().String(),
		PotentialAction: searchAction{
			Type: "SearchAction",
			Target: entryPoint{
				Type:        "EntryPoint",
				URLTemplate: s.BaseURL + "/" + string(l) + "/search?q={search_term_string}",
			},
			QueryInput: "required name=search_term_string",
		},
		Publisher: s.publisher(),
	}
}

func (s SEO) NewsArticle(l i18n.Locale, a content.Article) any {
	return newsArticleLD{
		Context:       schemaContext,
		Type:          "NewsArticle",
		Headline:      a.Title,
		Description:   a.Excerpt,
		Image:         []string{s.absolute(a.CoverImage)},
		DatePublished: a.PublishedAt.UTC().Format(time.RFC3339),
		DateModified:  a.UpdatedAt.UTC().Format(time.RFC3339),
		Author: person{
			Type:        "Person",
			Name:        a.Author.Name,
			Image:       s.absolute(a.Author.Avatar),
			Description: a.Author.Bio,
		},
		Publisher: s.publisher(),
		MainEntityOfPage: webPage{
			Type: "WebPage",
			ID:   s.BaseURL + "/" + string(l) + "/article/" + a.Slug,
		},
		ArticleSection: a.Category.Name,
		Keywords:       strings.Join(a.Tags, ", "),
		WordCount:      content.WordCount(a.Content),
		TimeRequired:   fmt.Sprintf("PT%dM", a.ReadTime),
		InLanguage:     l.Tag().String(),
	}
}

func (s SEO) BreadcrumbList(crumbs []Breadcrumb) any {
	items := make([]listItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = listItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     s.absolute(c.URL),
		}
	}

	return breadcrumbListLD{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

func (s SEO) absolute(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return s.BaseURL + path
}

// jsonLD marshals a descriptor for a <script type="application/ld+json">
// element. json.Marshal escapes <, > and &, so the result cannot close the
// script element early.
func jsonLD(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal structured data: %w", err)
	}

	return template.JS(b), nil
}

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string          `xml:"loc"`
	LastMod    string          `xml:"lastmod,omitempty"`
	ChangeFreq string          `xml:"changefreq,omitempty"`
	Priority   string          `xml:"priority,omitempty"`
	Alternates []AlternateLink `xml:"xhtml:link"`
}

type AlternateLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap enumerates every locale × {home, search, category, article} URL.
// Pages without their own timestamp use the newest article update time.
func (s SEO) Sitemap(categories []content.Category, articles []content.Article) []SitemapURL {
	var newest time.Time
	for _, a := range articles {
		if a.UpdatedAt.After(newest) {
			newest = a.UpdatedAt
		}
	}
	lastMod := ""
	if !newest.IsZero() {
		lastMod = newest.UTC().Format(time.DateOnly)
	}

	urls := make([]SitemapURL, 0, len(i18n.Locales)*(2+len(categories)+len(articles)))
	for _, l := range i18n.Locales {
		urls = append(urls,
			s.sitemapURL(l, "", lastMod, "daily", "1.0"),
			s.sitemapURL(l, "/search", lastMod, "weekly", "0.8"),
		)
		for _, c := range categories {
			urls = append(urls, s.sitemapURL(l, "/category/"+c.Slug, lastMod, "daily", "0.8"))
		}
		for _, a := range articles {
			urls = append(urls, s.sitemapURL(l, "/article/"+a.Slug, a.UpdatedAt.UTC().Format(time.DateOnly), "weekly", "0.9"))
		}
	}

	return urls
}

func (s SEO) sitemapURL(l i18n.Locale, path, lastMod, freq, priority string) SitemapURL {
	return SitemapURL{
		Loc:        s.BaseURL + "/" + string(l) + path,
		LastMod:    lastMod,
		ChangeFreq: freq,
		Priority:   priority,
		Alternates: s.alternateLinks(path),
	}
}

// alternateLinks lists the localized URLs of the locale-less path, keyed by
// BCP-47 tag, plus x-default. Pages and the sitemap share it.
func (s SEO) alternateLinks(path string) []AlternateLink {
	alternates := make([]AlternateLink, 0, len(i18n.Locales)+1)
	for _, alt := range i18n.Locales {
		alternates = append(alternates, AlternateLink{
			Rel:      "alternate",
			Hreflang: alt.Tag().String(),
			Href:     s.BaseURL + "/" + string(alt) + path,
		})
	}

	return append(alternates, AlternateLink{
		Rel:      "alternate",
		Hreflang: "x-default",
		Href:     s.BaseURL + "/" + string(i18n.DefaultLocale) + path,
	})
}

func WriteSitemap(w io.Writer, urls []SitemapURL) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{XMLNS: sitemapNS, XHTML: xhtmlNS, URLs: urls}); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	return nil
}

type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Lang            string         `json:"lang"`
	Dir             string         `json:"dir"`
	Icons           []ManifestIcon `json:"icons"`
}

type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func (s SEO) Manifest() Manifest {
	return Manifest{
		Name:            s.SiteName + " - Your Trusted News Source",
		ShortName:       s.SiteName,
		Description:     s.Description,
		StartURL:        "/" + string(i18n.DefaultLocale),
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#000000",
		Lang:            string(i18n.DefaultLocale),
		Dir:             string(i18n.DefaultLocale.Direction()),
		Icons: []ManifestIcon{
			{Src: "/static/img/logo.svg", Sizes: "192x192", Type: "image/svg+xml"},
			{Src: "/static/img/logo.svg", Sizes: "512x512", Type: "image/svg+xml"},
		},
	}
}

func (s SEO) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /rpc\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + s.BaseURL + "/sitemap.xml\n")

	return b.String()
}
