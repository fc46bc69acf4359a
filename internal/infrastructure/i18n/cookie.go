package i18n

import (
	"net/url"
	"strings"
)

const (
	// LangCookieName stores the user's language preference.
	LangCookieName = "PLAY_LANG"
	// DefaultLanguage is returned when the cookie is absent.
	DefaultLanguage = "en"
)

// ResolveLanguage returns the PLAY_LANG value from a Cookie header
// (e.g. "PLAY_LANG=cy; other=1"), or "en" when the cookie is absent.
func ResolveLanguage(cookieHeader string) string {
	return LanguageFromCookies(cookieHeader, LangCookieName, DefaultLanguage)
}

// LanguageFromCookies scans a Cookie header for the first entry whose
// URL-decoded name equals name and returns its URL-decoded value.
// Entries that cannot be decoded are skipped.
func LanguageFromCookies(cookieHeader, name, fallback string) string {
	for _, entry := range strings.Split(cookieHeader, ";") {
		entry = strings.TrimLeft(entry, " ")
		rawName, rawValue, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		decoded, err := url.PathUnescape(rawName)
		if err != nil || decoded != name {
			continue
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			continue
		}
		return value
	}
	return fallback
}
