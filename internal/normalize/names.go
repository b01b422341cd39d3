package normalize

import (
	"strings"
	"unicode"
)

// idSeparator joins identity fields. Field strips it so it can never occur
// inside a normalized field.
const idSeparator = "|"

// Field canonicalizes a text field for identity purposes: every Unicode
// whitespace rune and the separator are removed, and the legacy variant 台
// is rewritten to 臺 so that 台北市 and 臺北市 compare equal.
func Field(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '|' {
			return -1
		}
		return r
	}, s)
	return strings.ReplaceAll(s, "台", "臺")
}

// OptText trims v and returns nil when nothing is left, the explicit
// "absent" marker for optional descriptive fields.
func OptText(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
