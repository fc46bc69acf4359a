package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for {placeholder} values (may be nil).
	T(locale, key string, data map[string]any) string
}

// Localizer renders messages for one language that was resolved up front,
// typically from the request's language cookie.
type Localizer interface {
	// Language returns the resolved language code (e.g. "cy").
	Language() string
	// Text renders key with args substituted. Unknown keys render as "".
	Text(key string, args map[string]any) string
}
