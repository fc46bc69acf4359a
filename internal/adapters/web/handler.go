package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"uploadcheck/internal/domain"
	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/infrastructure/i18n"
	"uploadcheck/internal/ports/input"
)

const (
	// fileField is the multipart field name of the file input.
	fileField = "fileToUpload"
	// maxCheckBody caps the JSON body of a check request.
	maxCheckBody = 64 << 10
	// maxFormOverhead is what an upload body may carry beyond the file
	// itself: part headers, boundaries and other form fields.
	maxFormOverhead = 64 << 10
)

// Handler serves the upload pages and the file check endpoints.
type Handler struct {
	uploads    input.UploadUseCase
	catalog    *i18n.Catalog
	cookieName string
	tmpl       *template.Template
	validate   *validator.Validate
}

func NewHandler(uploads input.UploadUseCase, catalog *i18n.Catalog, cookieName string) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if cookieName == "" {
		cookieName = i18n.LangCookieName
	}
	return &Handler{
		uploads:    uploads,
		catalog:    catalog,
		cookieName: cookieName,
		tmpl:       tmpl,
		validate:   validator.New(),
	}, nil
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.withLanguage)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/footer", h.handleFooter)
	r.Get("/upload/{context}", h.handlePage)
	r.Post("/upload/{context}", h.handleUpload)
	r.Post("/upload/{context}/check", h.handleCheck)
	return r
}

type checkRequest struct {
	Filename string `json:"filename" validate:"required"`
	Size     int64  `json:"size" validate:"gte=0"`
}

type checkResponse struct {
	Outcome    domain.Outcome     `json:"outcome"`
	FileName   string             `json:"file_name"`
	MessageKey string             `json:"message_key,omitempty"`
	Message    string             `json:"message,omitempty"`
	Form       entities.FormState `json:"form"`
}

// handleCheck runs the file checks for a file the user just selected.
func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCheckBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, v, err := h.uploads.SelectFile(chi.URLParam(r, "context"), entities.Candidate{RawName: req.Filename, Size: req.Size}, h.localizer(r))
	if errors.Is(err, domain.ErrUnknownContext) {
		writeError(w, http.StatusNotFound, "unknown upload context")
		return
	}
	if err != nil {
		log.Printf("web: check: %v", err)
		writeError(w, http.StatusInternalServerError, "check failed")
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Outcome:    v.Outcome,
		FileName:   v.FileName,
		MessageKey: v.MessageKey,
		Message:    state.InlineError,
		Form:       state,
	})
}

// handlePage renders the upload page before any file is selected.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.uploads.Profile(chi.URLParam(r, "context"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, http.StatusOK, "upload", h.page(r, profile, entities.FormState{}))
}

// handleUpload re-runs the file checks on a submitted form. The file body
// is counted and discarded, never stored.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	profile, err := h.uploads.Profile(chi.URLParam(r, "context"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, profile.MaxSizeBytes+1+maxFormOverhead)

	file, err := readFilePart(r, profile.MaxSizeBytes)
	if err != nil {
		log.Printf("web: upload %s: %v", profile.Context, err)
		http.Error(w, "bad upload", http.StatusBadRequest)
		return
	}

	loc := h.localizer(r)
	state, v, err := h.uploads.SelectFile(profile.Context, file, loc)
	if err != nil {
		log.Printf("web: upload %s: %v", profile.Context, err)
		http.Error(w, "check failed", http.StatusInternalServerError)
		return
	}

	data := h.page(r, profile, state)
	status := http.StatusUnprocessableEntity
	if v.Outcome.Valid() {
		status = http.StatusOK
		data.Accepted = loc.Text("upload.accepted", v.Args)
	}
	h.render(w, status, "upload", data)
}

// readFilePart streams the multipart form to the file field and counts at
// most limit+1 of its bytes. Closing the part drains the rest, so callers
// cap r.Body to bound the total read.
func readFilePart(r *http.Request, limit int64) (entities.Candidate, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return entities.Candidate{}, err
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return entities.Candidate{}, errors.New("no " + fileField + " part")
		}
		if err != nil {
			return entities.Candidate{}, err
		}
		if part.FormName() != fileField {
			part.Close()
			continue
		}
		n, err := io.Copy(io.Discard, io.LimitReader(part, limit+1))
		part.Close()
		if err != nil {
			return entities.Candidate{}, err
		}
		return entities.Candidate{RawName: part.FileName(), Size: n}, nil
	}
}

// handleFooter renders the licence notice in the request language.
func (h *Handler) handleFooter(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "footer", h.uploads.Footer(h.localizer(r)))
}

func (h *Handler) page(r *http.Request, profile entities.Profile, state entities.FormState) pageData {
	loc := h.localizer(r)
	return pageData{
		Lang:     loc.Language(),
		Title:    loc.Text(profile.MessagePrefix+".title", nil),
		Action:   r.URL.Path,
		PagePath: "/upload/" + profile.Context,
		Accept:   "." + profile.Extension,
		Form:     state,
		Footer:   h.uploads.Footer(loc),
		loc:      loc,
	}
}
