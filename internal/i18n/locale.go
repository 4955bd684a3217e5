package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	DefaultLocale = English
)

// Locales lists the supported locales, default first.
var Locales = []Locale{English, Arabic}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var regionalTags = map[Locale]language.Tag{
	English: language.AmericanEnglish,
	Arabic:  language.MustParse("ar-SA"),
}

// Parse reports whether s names a supported locale.
func Parse(s string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == s {
			return l, true
		}
	}

	return "", false
}

// Direction is RTL for Arabic and LTR for everything else.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}

	return LTR
}

// Tag is the regional BCP 47 tag used for hreflang and content language.
func (l Locale) Tag() language.Tag {
	if tag, ok := regionalTags[l]; ok {
		return tag
	}

	return regionalTags[DefaultLocale]
}

// OpenGraph returns the og:locale form of the tag, e.g. "en_US".
func (l Locale) OpenGraph() string {
	base, _ := l.Tag().Base()
	region, _ := l.Tag().Region()

	return base.String() + "_" + region.String()
}

// FormatNumber prints n with the locale's digit grouping.
func (l Locale) FormatNumber(n int) string {
	return message.NewPrinter(l.Tag()).Sprintf("%d", n)
}

// Alternate returns the other supported locale, used by the language switcher.
func (l Locale) Alternate() Locale {
	if l == Arabic {
		return English
	}

	return Arabic
}
