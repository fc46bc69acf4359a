package filename

import "strings"

// Base returns the bare file name from the value a browser submitted for a
// file input. Older browsers send the full Windows client path
// (e.g. `C:\fakepath\report.ods`, or a `\\server\share\...` UNC path);
// newer ones send only the name, which is returned untouched even when it
// contains a backslash.
func Base(raw string) string {
	if !isLegacyPath(raw) {
		return raw
	}
	return raw[strings.LastIndexByte(raw, '\\')+1:]
}

// isLegacyPath reports whether raw is a Windows drive-letter or UNC path.
func isLegacyPath(raw string) bool {
	if strings.HasPrefix(raw, `\\`) {
		return true
	}
	if len(raw) < 3 || raw[1] != ':' || raw[2] != '\\' {
		return false
	}
	c := raw[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Ext returns the text after the last dot, without the dot.
// A name with no dot has no extension.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
