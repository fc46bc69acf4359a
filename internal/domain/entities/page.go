package entities

// FormState is what the upload page shows after a file was selected.
// The zero value is the page before any selection.
type FormState struct {
	FileName          string `json:"file_name"`
	HeaderBarVisible  bool   `json:"header_bar_visible"`
	RemoveLinkVisible bool   `json:"remove_link_visible"`

	SubmitDisabled bool   `json:"submit_disabled"`
	SummaryVisible bool   `json:"summary_visible"`
	InlineError    string `json:"inline_error,omitempty"`
	SummaryError   string `json:"summary_error,omitempty"`
	FormError      bool   `json:"form_error"` // "error" class on the form container
	FileAlert      bool   `json:"file_alert"` // "fileAlert" class on the file wrapper
}

// Footer is the Open Government Licence notice in one language.
type Footer struct {
	Language string
	Lead     string
	LinkText string
	LinkURL  string
	Tail     string
}
