package i18n

import "uploadcheck/internal/ports/output"

var _ output.Localizer = (*Content)(nil)

// Content renders catalog messages in a single language. It is what gets
// handed to components that need localised text.
type Content struct {
	catalog *Catalog
	lang    string
}

// Language returns the catalog language the text is rendered in.
func (c *Content) Language() string { return c.lang }

// Text renders key in the content's language with {placeholders} replaced
// from args.
func (c *Content) Text(key string, args map[string]any) string {
	return c.catalog.T(c.lang, key, args)
}
