package i18n

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var errIncompleteDictionary = errors.New("incomplete dictionary")

type Dictionary struct {
	Common struct {
		Loading           string `yaml:"loading"`
		Error             string `yaml:"error"`
		Retry             string `yaml:"retry"`
		ReadMore          string `yaml:"readMore"`
		BackToHome        string `yaml:"backToHome"`
		Search            string `yaml:"search"`
		SearchPlaceholder string `yaml:"searchPlaceholder"`
		NoResults         string `yaml:"noResults"`
		Categories        string `yaml:"categories"`
		AllCategories     string `yaml:"allCategories"`
		RelatedArticles   string `yaml:"relatedArticles"`
		PublishedOn       string `yaml:"publishedOn"`
		By                string `yaml:"by"`
		Minutes           string `yaml:"minutes"`
		ReadTime          string `yaml:"readTime"`
		Views             string `yaml:"views"`
		Featured          string `yaml:"featured"`
	} `yaml:"common"`

	Navigation struct {
		Home    string `yaml:"home"`
		Search  string `yaml:"search"`
		About   string `yaml:"about"`
		Contact string `yaml:"contact"`
	} `yaml:"navigation"`

	// Categories maps category slugs to translated names.
	Categories map[string]string `yaml:"categories"`

	Home struct {
		Title           string `yaml:"title"`
		Subtitle        string `yaml:"subtitle"`
		FeaturedStories string `yaml:"featuredStories"`
		LatestNews      string `yaml:"latestNews"`
		Pagination      struct {
			Previous string `yaml:"previous"`
			Next     string `yaml:"next"`
			Page     string `yaml:"page"`
		} `yaml:"pagination"`
	} `yaml:"home"`

	Article struct {
		ShareArticle string `yaml:"shareArticle"`
		Tags         string `yaml:"tags"`
		Author       string `yaml:"author"`
		PublishDate  string `yaml:"publishDate"`
		LastUpdated  string `yaml:"lastUpdated"`
		CopyLink     string `yaml:"copyLink"`
	} `yaml:"article"`

	Search struct {
		Title                string   `yaml:"title"`
		Subtitle             string   `yaml:"subtitle"`
		ResultsFor           string   `yaml:"resultsFor"`
		ResultsCount         string   `yaml:"resultsCount"`
		NoResultsTitle       string   `yaml:"noResultsTitle"`
		NoResultsDescription string   `yaml:"noResultsDescription"`
		SearchSuggestions    string   `yaml:"searchSuggestions"`
		TrySearching         string   `yaml:"trySearching"`
		TrendingTopics       string   `yaml:"trendingTopics"`
		BrowseCategories     string   `yaml:"browseCategories"`
		QuickSearches        string   `yaml:"quickSearches"`
		Articles             string   `yaml:"articles"`
		TrendingTerms        []string `yaml:"trendingTerms"`
		QuickTerms           []string `yaml:"quickTerms"`
	} `yaml:"search"`

	Errors struct {
		NotFound struct {
			Title          string `yaml:"title"`
			Description    string `yaml:"description"`
			BackHome       string `yaml:"backHome"`
			SearchArticles string `yaml:"searchArticles"`
		} `yaml:"notFound"`
		Server struct {
			Title       string `yaml:"title"`
			Description string `yaml:"description"`
			Retry       string `yaml:"retry"`
		} `yaml:"server"`
	} `yaml:"errors"`

	// Months holds the twelve month names, January first.
	Months []string `yaml:"months"`
}

// CategoryName returns the translated name of the category slug, or fallback.
func (d *Dictionary) CategoryName(slug, fallback string) string {
	if name, ok := d.Categories[slug]; ok && name != "" {
		return name
	}

	return fallback
}

// FormatDate renders t as a long date, "January 15, 2024" in English and
// "15 يناير 2024" elsewhere.
func (d *Dictionary) FormatDate(l Locale, t time.Time) string {
	month := t.Month().String()
	if len(d.Months) == 12 {
		month = d.Months[t.Month()-1]
	}

	if l.Direction() == RTL {
		return strconv.Itoa(t.Day()) + " " + month + " " + strconv.Itoa(t.Year())
	}

	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}

func (d *Dictionary) validate() error {
	switch {
	case d.Home.Title == "":
		return fmt.Errorf("home.title: %w", errIncompleteDictionary)
	case d.Common.Search == "":
		return fmt.Errorf("common.search: %w", errIncompleteDictionary)
	case d.Errors.NotFound.Title == "":
		return fmt.Errorf("errors.notFound.title: %w", errIncompleteDictionary)
	case len(d.Months) != 12:
		return fmt.Errorf("months: want 12, got %d: %w", len(d.Months), errIncompleteDictionary)
	}

	return nil
}

// defaultDictionary is the last resort when no dictionary file can be loaded.
func defaultDictionary() *Dictionary {
	d := &Dictionary{}

	d.Common.Loading = "Loading..."
	d.Common.Error = "Error"
	d.Common.Retry = "Try again"
	d.Common.ReadMore = "Read more"
	d.Common.BackToHome = "Back to home"
	d.Common.Search = "Search"
	d.Common.SearchPlaceholder = "Search..."
	d.Common.NoResults = "No results"
	d.Common.Categories = "Categories"
	d.Common.AllCategories = "All Categories"
	d.Common.RelatedArticles = "Related Articles"
	d.Common.PublishedOn = "Published on"
	d.Common.By = "By"
	d.Common.Minutes = "minutes"
	d.Common.ReadTime = "read"
	d.Common.Views = "views"
	d.Common.Featured = "Featured"

	d.Navigation.Home = "Home"
	d.Navigation.Search = "Search"
	d.Navigation.About = "About"
	d.Navigation.Contact = "Contact"

	d.Categories = map[string]string{
		"technology":    "Technology",
		"business":      "Business",
		"sports":        "Sports",
		"entertainment": "Entertainment",
		"health":        "Health",
		"science":       "Science",
	}

	d.Home.Title = "News"
	d.Home.Subtitle = "Latest news and updates"
	d.Home.FeaturedStories = "Featured Stories"
	d.Home.LatestNews = "Latest News"
	d.Home.Pagination.Previous = "Previous"
	d.Home.Pagination.Next = "Next"
	d.Home.Pagination.Page = "Page"

	d.Article.ShareArticle = "Share Article"
	d.Article.Tags = "Tags"
	d.Article.Author = "Author"
	d.Article.PublishDate = "Publish Date"
	d.Article.LastUpdated = "Last Updated"
	d.Article.CopyLink = "Copy Link"

	d.Search.Title = "Search Results"
	d.Search.Subtitle = "Search the news archive"
	d.Search.ResultsFor = "Results for"
	d.Search.ResultsCount = "results"
	d.Search.NoResultsTitle = "No results found"
	d.Search.NoResultsDescription = "Try adjusting your search"
	d.Search.SearchSuggestions = "Suggestions"
	d.Search.TrySearching = "Try searching for:"
	d.Search.TrendingTopics = "Trending Topics"
	d.Search.BrowseCategories = "Browse Categories"
	d.Search.QuickSearches = "Quick Searches"
	d.Search.Articles = "articles"

	d.Errors.NotFound.Title = "Page Not Found"
	d.Errors.NotFound.Description = "The page doesn't exist."
	d.Errors.NotFound.BackHome = "Go home"
	d.Errors.NotFound.SearchArticles = "Search articles"
	d.Errors.Server.Title = "Server Error"
	d.Errors.Server.Description = "Something went wrong."
	d.Errors.Server.Retry = "Try again"

	d.Months = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	return d
}
