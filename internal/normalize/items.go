package normalize

import (
	"regexp"
	"strings"
)

var itemNumShape = regexp.MustCompile(`^[0-9]{1,5}[A-Z]{0,2}$`)

// ItemNum trims whitespace and uppercases any alpha suffix. The numeric part
// is kept verbatim so leading zeros survive. Returns "" when the token does
// not look like an MBS item number.
func ItemNum(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !itemNumShape.MatchString(s) {
		return ""
	}
	return s
}

// OptStr returns nil for empty-after-trim input, otherwise a pointer to the
// trimmed string.
func OptStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
