package i18n

import (
	"embed"
	"fmt"
	"log"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"uploadcheck/internal/domain"
	"uploadcheck/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.cy.toml"}

// Ensure Catalog implements the output.T port.
var _ output.T = (*Catalog)(nil)

// Catalog is the immutable message catalog: a go-i18n Bundle loaded once
// from the embedded active.*.toml files. It is safe for concurrent use.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	languages       []language.Tag // default first
	matcher         language.Matcher
	keys            []string
}

// NewCatalog builds a Catalog using the given default locale (e.g. "en").
// Every language file must define exactly the same message keys.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	keysByLang := make(map[language.Tag]map[string]struct{}, len(localeFiles))
	languages := []language.Tag{tag}
	for _, file := range localeFiles {
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		set := make(map[string]struct{}, len(mf.Messages))
		for _, m := range mf.Messages {
			set[m.ID] = struct{}{}
		}
		keysByLang[mf.Tag] = set
		if mf.Tag != tag {
			languages = append(languages, mf.Tag)
		}
	}

	base, ok := keysByLang[tag]
	if !ok {
		return nil, fmt.Errorf("i18n: no messages for default locale %s", tag)
	}
	for lang, set := range keysByLang {
		if missing := difference(base, set); len(missing) > 0 {
			return nil, fmt.Errorf("i18n: %w: %s lacks %v", domain.ErrCatalogMismatch, lang, missing)
		}
		if extra := difference(set, base); len(extra) > 0 {
			return nil, fmt.Errorf("i18n: %w: %s lacks %v", domain.ErrCatalogMismatch, tag, extra)
		}
	}

	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Catalog{
		bundle:          bundle,
		defaultLanguage: tag,
		languages:       languages,
		matcher:         language.NewMatcher(languages),
		keys:            keys,
	}, nil
}

// difference returns the keys of a that are not in b, sorted.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// DefaultLanguage returns the language used when a key or locale is unknown.
func (c *Catalog) DefaultLanguage() string { return c.defaultLanguage.String() }

// Languages returns the languages the catalog has messages for.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.languages...)
}

// Keys returns every message key, sorted.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Has reports whether key is defined.
func (c *Catalog) Has(key string) bool {
	i := sort.SearchStrings(c.keys, key)
	return i < len(c.keys) && c.keys[i] == key
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the empty string, logging the miss.
func (c *Catalog) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, c.defaultLanguage.String())

	localizer := i18n.NewLocalizer(c.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		if msg == "" {
			return ""
		}
	}
	return Substitute(msg, data)
}

// Match returns the catalog language that serves lang: the closest
// supported language, or the default when lang is unknown or malformed.
func (c *Catalog) Match(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return c.defaultLanguage.String()
	}
	_, i, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return c.defaultLanguage.String()
	}
	return c.languages[i].String()
}

// For returns the Content for a resolved language (e.g. a cookie value),
// bound to the catalog language that serves it.
func (c *Catalog) For(lang string) *Content {
	return &Content{catalog: c, lang: c.Match(lang)}
}
