package domain

// Outcome is the result of checking one selected file against an upload profile.
type Outcome string

// Possible values for Outcome, in check order.
const (
	OutcomeValid             Outcome = "valid"
	OutcomeInvalidCharacters Outcome = "invalid-characters"
	OutcomeTooLong           Outcome = "too-long"
	OutcomeWrongExtension    Outcome = "wrong-extension"
	OutcomeTooLarge          Outcome = "too-large"
)

// Failures lists every failing outcome.
var Failures = []Outcome{
	OutcomeInvalidCharacters,
	OutcomeTooLong,
	OutcomeWrongExtension,
	OutcomeTooLarge,
}

// Valid reports whether the file passed every check.
func (o Outcome) Valid() bool { return o == OutcomeValid }

// MessageSuffix returns the last segment of the message key for a failing
// outcome, e.g. "too.long". A valid outcome has no message.
func (o Outcome) MessageSuffix() string {
	switch o {
	case OutcomeInvalidCharacters:
		return "invalid.characters"
	case OutcomeTooLong:
		return "too.long"
	case OutcomeWrongExtension:
		return "wrong.type"
	case OutcomeTooLarge:
		return "large"
	default:
		return ""
	}
}
