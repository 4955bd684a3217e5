package newsportal

import (
	"html"
	"html/template"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

const ellipsis = "..."

// Highlight escapes text and wraps every case-insensitive occurrence of each
// whitespace-separated query term in <mark class="search-highlight">.
func Highlight(text, query string) template.HTML {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return template.HTML(html.EscapeString(text))
	}

	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	re := regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(`<mark class="search-highlight">`)
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString(`</mark>`)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))

	return template.HTML(b.String())
}

// Snippet cuts at most maxLen runes of text centred on the first occurrence
// of the first query term, marking cut ends with "...". Without a match it
// returns the leading maxLen runes.
func Snippet(text, query string, maxLen int) string {
	runes := []rune(text)
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return head(runes, maxLen)
	}

	index := indexFold(runes, []rune(terms[0]))
	if index < 0 {
		return head(runes, maxLen)
	}

	start := max(0, index-maxLen/2)
	end := min(len(runes), start+maxLen)

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet += ellipsis
	}

	return snippet
}

func head(runes []rune, maxLen int) string {
	if len(runes) <= maxLen {
		return string(runes)
	}

	return string(runes[:maxLen]) + ellipsis
}

// indexFold returns the rune index of term in text ignoring case, or -1.
// Runes are lowered one by one so indexes stay aligned with text.
func indexFold(text, term []rune) int {
	lower := make([]rune, len(text))
	for i, r := range text {
		lower[i] = unicode.ToLower(r)
	}
	for i, r := range term {
		term[i] = unicode.ToLower(r)
	}

	for i := 0; i+len(term) <= len(lower); i++ {
		if slices.Equal(lower[i:i+len(term)], term) {
			return i
		}
	}

	return -1
}
