package i18n

import (
	"regexp"
	"strconv"
	"strings"
)

var placeholderRx = regexp.MustCompile(`\{([^{}]*)\}`)

// Substitute replaces each {name} token in template with args[name] when
// that value is a string or a number. Any other token is left as is,
// braces included.
func Substitute(template string, args map[string]any) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}
	return placeholderRx.ReplaceAllStringFunc(template, func(token string) string {
		if s, ok := placeholderValue(args[token[1:len(token)-1]]); ok {
			return s
		}
		return token
	})
}

func placeholderValue(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
