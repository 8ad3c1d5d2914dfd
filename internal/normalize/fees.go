package normalize

import (
	"math"
	"strconv"
	"strings"
)

// FeeToCents parses a schedule-fee string ("51.25", "$51.25", "1,234.00")
// into int64 cents. Uses math.Round to avoid truncation bias. Returns nil
// for empty or unparseable input.
func FeeToCents(s string) *int64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	c := int64(math.Round(v * 100))
	return &c
}
