package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const wordsPerMinute = 200

// Words returns the visible words of an HTML fragment in document order.
func Words(body string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse article body: %w", err)
	}

	doc.Find("script, style").Remove()

	var words []string
	for _, n := range doc.Find("body").Nodes {
		words = collectWords(n, words)
	}

	return words, nil
}

func collectWords(n *html.Node, words []string) []string {
	if n.Type == html.TextNode {
		return append(words, strings.Fields(n.Data)...)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		words = collectWords(c, words)
	}

	return words
}

// PlainText strips markup from an HTML fragment and collapses whitespace.
func PlainText(body string) string {
	words, err := Words(body)
	if err != nil {
		return ""
	}

	return strings.Join(words, " ")
}

// WordCount is the number of visible words in an HTML fragment.
func WordCount(body string) int {
	words, err := Words(body)
	if err != nil {
		return 0
	}

	return len(words)
}

// ReadTime estimates reading time in whole minutes, never less than one.
func ReadTime(body string) int {
	minutes := (WordCount(body) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}

	return minutes
}
