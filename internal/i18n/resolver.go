package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Loader returns the raw YAML dictionary of a locale.
type Loader func(l Locale) ([]byte, error)

// EmbeddedLoader reads dictionaries bundled with the binary.
func EmbeddedLoader(l Locale) ([]byte, error) {
	return localesFS.ReadFile("locales/" + string(l) + ".yaml")
}

// Resolver maps locales to dictionaries. A locale whose dictionary cannot be
// loaded falls back to the default locale, and when that fails too, to the
// built-in English strings. Successfully parsed dictionaries are cached.
type Resolver struct {
	load Loader
	log  *slog.Logger

	mu    sync.RWMutex
	cache map[Locale]*Dictionary
}

func NewResolver(load Loader, log *slog.Logger) *Resolver {
	return &Resolver{
		load:  load,
		log:   log,
		cache: make(map[Locale]*Dictionary, len(Locales)),
	}
}

// Dictionary never fails: unknown or broken locales resolve through the
// fallback chain.
func (r *Resolver) Dictionary(locale string) *Dictionary {
	l, ok := Parse(locale)
	if ok {
		d, err := r.dictionary(l)
		if err == nil {
			return d
		}
		r.log.Warn("failed to load dictionary", "locale", l, "error", err)
	} else {
		r.log.Warn("unsupported locale", "locale", locale)
	}

	if l != DefaultLocale {
		d, err := r.dictionary(DefaultLocale)
		if err == nil {
			return d
		}
		r.log.Warn("failed to load default dictionary", "locale", DefaultLocale, "error", err)
	}

	return defaultDictionary()
}

func (r *Resolver) dictionary(l Locale) (*Dictionary, error) {
	r.mu.RLock()
	d, ok := r.cache[l]
	r.mu.RUnlock()
	if ok {
		return d, nil
	}

	raw, err := r.load(l)
	if err != nil {
		return nil, fmt.Errorf("load %s dictionary: %w", l, err)
	}

	d = &Dictionary{}
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("decode %s dictionary: %w", l, err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("validate %s dictionary: %w", l, err)
	}

	r.mu.Lock()
	r.cache[l] = d
	r.mu.Unlock()

	return d, nil
}
