package normalize

import (
	"strings"
	"time"
)

// Date formats seen in MBS schedule exports. Day-first formats come before
// month-first so Australian dates win on ambiguous input.
var dateFormats = []string{
	"02.01.2006",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"02-01-2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05",
}

// ParseDate attempts to parse a date string in multiple common formats,
// returning it re-rendered as ISO 8601 (YYYY-MM-DD). Returns nil if the
// input is empty or unparseable.
func ParseDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}
