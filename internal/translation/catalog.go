package translation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"datelabel/internal/dateformat"

	"golang.org/x/text/language"
)

// ErrInvalidLocale is returned for strings that are not BCP 47 language tags
var ErrInvalidLocale = errors.New("invalid locale")

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

// builtin holds the messages shipped with the bot
var builtin = map[string]map[string]string{
	"en": {
		dateformat.KeyToday:      "today",
		dateformat.KeyYesterday:  "yesterday",
		dateformat.KeyWithinWeek: "{days} days ago",
	},
	"ru": {
		dateformat.KeyToday:      "Сегодня",
		dateformat.KeyYesterday:  "Вчера",
		dateformat.KeyWithinWeek: "{days} дн. назад",
	},
}

// Catalog holds translated messages per locale
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]string
	mu            sync.RWMutex
}

// NewCatalog creates a catalog preloaded with the built-in locales.
// An empty or invalid default locale falls back to DefaultLocale
func NewCatalog(defaultLocale string) *Catalog {
	defaultLocale, err := NormalizeLocale(defaultLocale)
	if err != nil {
		defaultLocale = DefaultLocale
	}

	c := &Catalog{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]string),
	}
	for locale, messages := range builtin {
		_ = c.Merge(locale, messages)
	}
	return c
}

// DefaultLocale returns the fallback locale
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Set stores a single message. Empty keys are ignored
func (c *Catalog) Set(locale, key, value string) error {
	locale, err := NormalizeLocale(locale)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.messages[locale] == nil {
		c.messages[locale] = make(map[string]string)
	}
	c.messages[locale][key] = value
	return nil
}

// Merge stores all messages for a locale, replacing existing keys
func (c *Catalog) Merge(locale string, messages map[string]string) error {
	for key, value := range messages {
		if err := c.Set(locale, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether the locale has messages of its own
func (c *Catalog) Has(locale string) bool {
	locale, err := NormalizeLocale(locale)
	if err != nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.messages[locale]
	return ok
}

// Resolve returns the most specific catalog locale serving locale,
// trying the full tag before its base language
func (c *Catalog) Resolve(locale string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range fallbacks(locale) {
		if _, ok := c.messages[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

// Locales returns all known locales in sorted order
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Lookup returns the message for key in locale. The search goes from the
// full tag to its base language, then the default locale and its base,
// and finally returns the key itself
func (c *Catalog) Lookup(locale, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range append(fallbacks(locale), fallbacks(c.defaultLocale)...) {
		if msg, ok := c.messages[candidate][key]; ok {
			return msg
		}
	}
	return key
}

// Translator returns a translator bound to locale
func (c *Catalog) Translator(locale string) dateformat.Translator {
	return func(key string) string {
		return c.Lookup(locale, key)
	}
}

// NormalizeLocale parses a BCP 47 tag and returns its canonical form
// ("en-us" becomes "en-US", "ru_RU" becomes "ru-RU")
func NormalizeLocale(locale string) (string, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

func parseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, fmt.Errorf("%w: empty", ErrInvalidLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil || tag.IsRoot() {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return tag, nil
}

// fallbacks lists the catalog keys to try for locale, most specific first
func fallbacks(locale string) []string {
	tag, err := parseLocale(locale)
	if err != nil {
		return nil
	}

	tags := []string{tag.String()}
	if base, _ := tag.Base(); base.String() != tag.String() {
		tags = append(tags, base.String())
	}
	return tags
}
