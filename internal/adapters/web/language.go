package web

import (
	"context"
	"net/http"
	"strings"

	"uploadcheck/internal/infrastructure/i18n"
	"uploadcheck/internal/ports/output"
)

type contentKey struct{}

// withLanguage resolves the language cookie once per request and stores
// the matching Content in the request context.
func (h *Handler) withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.Join(r.Header.Values("Cookie"), "; ")
		lang := i18n.LanguageFromCookies(header, h.cookieName, h.catalog.DefaultLanguage())
		ctx := context.WithValue(r.Context(), contentKey{}, h.catalog.For(lang))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// localizer returns the request's Content, or the default language when the
// middleware did not run.
func (h *Handler) localizer(r *http.Request) output.Localizer {
	if c, ok := r.Context().Value(contentKey{}).(*i18n.Content); ok {
		return c
	}
	return h.catalog.For(h.catalog.DefaultLanguage())
}
