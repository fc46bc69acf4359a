package entities

import "uploadcheck/internal/domain"

// Candidate is a file the user selected, as the browser reported it.
type Candidate struct {
	RawName string // bare name or full legacy client path
	Size    int64
}

// Verdict is the result of validating a Candidate against a Profile.
type Verdict struct {
	Context    string
	FileName   string
	Size       int64
	Outcome    domain.Outcome
	MessageKey string         // empty when valid
	Args       map[string]any // placeholder values for the message
}
