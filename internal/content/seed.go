package content

import (
	"fmt"
	"time"
)

const (
	firstGeneratedArticle = 4
	lastGeneratedArticle  = 24
	lastFeaturedArticle   = 6
)

// NewSeedStore builds the store from the built-in records. Generated
// articles are dated relative to now.
func NewSeedStore(now time.Time) (*Store, error) {
	categories, authors, articles := Seed(now)

	store, err := NewStore(categories, authors, articles)
	if err != nil {
		return nil, fmt.Errorf("build seed store: %w", err)
	}

	return store, nil
}

// Seed returns the built-in categories, authors and articles: three literal
// stories followed by generated filler that cycles through categories and authors.
func Seed(now time.Time) ([]Category, []Author, []Article) {
	categories := seedCategories()
	authors := seedAuthors()
	articles := seedArticles(categories, authors)

	for i := firstGeneratedArticle; i <= lastGeneratedArticle; i++ {
		articles = append(articles, generateArticle(i, categories, authors, now))
	}

	return categories, authors, articles
}

func seedAuthors() []Author {
	return []Author{
		{
			ID:     "1",
			Name:   "Sarah Johnson",
			Avatar: "/static/img/professional-woman-journalist.svg",
			Bio:    "Senior Technology Reporter with 10+ years of experience covering emerging tech trends.",
			Social: &Social{
				Twitter:  "@sarahjtech",
				LinkedIn: "sarah-johnson-tech",
				Email:    "sarah@newshub.com",
			},
		},
		{
			ID:     "2",
			Name:   "Ahmed Hassan",
			Avatar: "/static/img/professional-journalist.svg",
			Bio:    "Business correspondent specializing in Middle East markets and global economics.",
			Social: &Social{
				Twitter:  "@ahmedbiz",
				LinkedIn: "ahmed-hassan-business",
			},
		},
		{
			ID:     "3",
			Name:   "Maria Rodriguez",
			Avatar: "/static/img/professional-woman-sports-reporter.svg",
			Bio:    "Sports journalist covering international football and Olympic events.",
			Social: &Social{
				Twitter: "@mariasports",
				Email:   "maria@newshub.com",
			},
		},
	}
}

func seedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Technology", Slug: "technology", Color: "tech", Description: "Latest in tech innovation"},
		{ID: "2", Name: "Business", Slug: "business", Color: "business", Description: "Market trends and analysis"},
		{ID: "3", Name: "Sports", Slug: "sports", Color: "sports", Description: "Sports news and updates"},
		{ID: "4", Name: "Entertainment", Slug: "entertainment", Color: "entertainment", Description: "Entertainment industry news"},
		{ID: "5", Name: "Health", Slug: "health", Color: "health", Description: "Health and wellness updates"},
		{ID: "6", Name: "Science", Slug: "science", Color: "science", Description: "Scientific discoveries and research"},
	}
}

func seedArticles(categories []Category, authors []Author) []Article {
	return []Article{
		{
			ID:          "1",
			Title:       "Revolutionary AI Breakthrough Changes Everything We Know About Machine Learning",
			Slug:        "ai-breakthrough-machine-learning-2024",
			Excerpt:     "Scientists at leading tech companies have developed a new AI architecture that promises to revolutionize how machines learn and adapt.",
			Content:     aiBreakthroughBody,
			CoverImage:  "/static/img/futuristic-ai-technology-laboratory.svg",
			Category:    categories[0],
			Author:      authors[0],
			PublishedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			ReadTime:    5,
			Tags:        []string{"AI", "Machine Learning", "Technology", "Innovation"},
			Featured:    true,
			Views:       15420,
		},
		{
			ID:          "2",
			Title:       "Global Markets Surge as Economic Indicators Show Strong Recovery",
			Slug:        "global-markets-economic-recovery-2024",
			Excerpt:     "Stock markets worldwide are experiencing significant gains as key economic indicators point to a robust recovery across major economies.",
			Content:     marketsSurgeBody,
			CoverImage:  "/static/img/stock-market-trading-floor-busy.svg",
			Category:    categories[1],
			Author:      authors[1],
			PublishedAt: time.Date(2024, 1, 14, 14, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 14, 14, 30, 0, 0, time.UTC),
			ReadTime:    4,
			Tags:        []string{"Markets", "Economy", "Finance", "Recovery"},
			Featured:    true,
			Views:       12350,
		},
		{
			ID:          "3",
			Title:       "Championship Final Set as Top Teams Advance in Thrilling Semifinals",
			Slug:        "championship-final-semifinals-2024",
			Excerpt:     "Two powerhouse teams have secured their spots in the championship final after delivering spectacular performances in yesterday's semifinal matches.",
			Content:     "<p>The stage is set for an epic championship final as two of the sport's most formidable teams have advanced after delivering breathtaking performances in the semifinal rounds.</p>",
			CoverImage:  "/static/img/sports-stadium-championship-celebration.svg",
			Category:    categories[2],
			Author:      authors[2],
			PublishedAt: time.Date(2024, 1, 13, 20, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 13, 20, 15, 0, 0, time.UTC),
			ReadTime:    3,
			Tags:        []string{"Sports", "Championship", "Finals"},
			Featured:    false,
			Views:       8920,
		},
	}
}

func generateArticle(i int, categories []Category, authors []Author, now time.Time) Article {
	category := categories[(i-1)%len(categories)]
	published := now.Add(-time.Duration(i) * 24 * time.Hour).UTC()

	return Article{
		ID:          fmt.Sprint(i),
		Title:       fmt.Sprintf("Sample Article %d: Important News Story That Matters", i),
		Slug:        fmt.Sprintf("sample-article-%d-news-story", i),
		Excerpt:     fmt.Sprintf("This is a sample excerpt for article %d. It provides a brief overview of the important news story that readers will find engaging and informative.", i),
		Content:     fmt.Sprintf("<p>This is the full content for article %d. It contains detailed information about the news story.</p>", i),
		CoverImage:  "/static/img/placeholder.svg",
		Category:    category,
		Author:      authors[(i-1)%len(authors)],
		PublishedAt: published,
		UpdatedAt:   published,
		Tags:        []string{fmt.Sprintf("Tag%d", i), "News", category.Name},
		Featured:    i <= lastFeaturedArticle,
		Views:       1000 + (i*7919)%10000,
	}
}

const aiBreakthroughBody = `<p>In a groundbreaking development that could reshape the future of artificial intelligence, researchers have unveiled a revolutionary new approach to machine learning that promises unprecedented capabilities.</p>

<p>The breakthrough, developed through collaboration between leading tech companies and academic institutions, introduces a novel architecture that allows AI systems to learn and adapt with remarkable efficiency.</p>

<h2>Key Innovations</h2>
<p>The new system incorporates several key innovations:</p>
<ul>
<li>Advanced neural network architectures</li>
<li>Improved training methodologies</li>
<li>Enhanced data processing capabilities</li>
<li>Better energy efficiency</li>
</ul>

<p>This development represents a significant leap forward in AI capabilities, with potential applications across numerous industries including healthcare, finance, and autonomous systems.</p>`

const marketsSurgeBody = `<p>Global financial markets are celebrating as a series of positive economic indicators suggest a strong and sustained recovery is underway across major world economies.</p>

<p>The surge comes after months of uncertainty, with investors now showing renewed confidence in the global economic outlook.</p>

<h2>Market Performance</h2>
<p>Key market movements include:</p>
<ul>
<li>S&amp;P 500 up 3.2% this week</li>
<li>European markets showing strong gains</li>
<li>Asian markets following positive trends</li>
<li>Commodity prices stabilizing</li>
</ul>

<p>Analysts attribute the positive momentum to improved employment figures, stable inflation rates, and increased consumer confidence across multiple regions.</p>`
