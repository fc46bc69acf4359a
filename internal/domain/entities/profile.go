package entities

import (
	"regexp"
	"unicode/utf8"

	"uploadcheck/internal/domain"
	"uploadcheck/pkg/filename"
)

// DefaultNamePattern is the allowed character set for file names when a
// profile does not set its own: letters, digits, space and common punctuation.
const DefaultNamePattern = `^[A-Za-z0-9 ._\-,()'&+!]+$`

var defaultNameRx = regexp.MustCompile(DefaultNamePattern)

// Profile holds the rules for one upload context (e.g. the ODS upload page).
type Profile struct {
	Context       string
	Extension     string // without the dot, compared case-sensitively
	MaxNameLength int    // characters; 0 = no limit
	MaxSizeBytes  int64
	NamePattern   *regexp.Regexp
	MessagePrefix string // e.g. "ers.file.upload.ods"
}

// Check runs the rules in their fixed order and returns the first failure,
// or OutcomeValid.
func (p Profile) Check(name string, size int64) domain.Outcome {
	rx := p.NamePattern
	if rx == nil {
		rx = defaultNameRx
	}
	if !rx.MatchString(name) {
		return domain.OutcomeInvalidCharacters
	}
	if p.MaxNameLength > 0 && utf8.RuneCountInString(name) > p.MaxNameLength {
		return domain.OutcomeTooLong
	}
	if filename.Ext(name) != p.Extension {
		return domain.OutcomeWrongExtension
	}
	if size > p.MaxSizeBytes {
		return domain.OutcomeTooLarge
	}
	return domain.OutcomeValid
}

// MessageKey returns the catalog key describing o for this profile.
// It is empty for a valid outcome.
func (p Profile) MessageKey(o domain.Outcome) string {
	suffix := o.MessageSuffix()
	if suffix == "" {
		return ""
	}
	return p.MessagePrefix + "." + suffix
}
