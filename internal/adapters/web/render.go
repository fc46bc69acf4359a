package web

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/ports/output"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// pageData is the view model for the upload page.
type pageData struct {
	Lang     string
	Title    string
	Action   string
	PagePath string
	Accept   string
	Accepted string
	Form     entities.FormState
	Footer   entities.Footer

	loc output.Localizer
}

// T renders a catalog key in the page language.
func (p pageData) T(key string) string {
	return p.loc.Text(key, nil)
}

// render executes a named template into a buffer, then writes it with status.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("web: render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
