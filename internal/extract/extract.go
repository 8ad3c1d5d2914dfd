// Package extract derives structured billing facts from free-text MBS item
// descriptions without an LLM or external API:
//   - Relations: exclusions, same-day rules, prerequisites, and derived-fee
//     cross-references between item numbers.
//   - Constraints: duration, frequency, cooldown, age, location, provider,
//     referral, and lettered-requirement conditions on a single item.
//
// Both extractors are pure functions over strings. The pattern library is
// compiled once at init and read-only afterwards, so calls are safe to run
// concurrently across items.
package extract

// DefaultWindow is the character radius scanned around a relation phrase for
// nearby item-number tokens.
const DefaultWindow = 120

// Extractor runs the rule-based extraction passes. The zero value is not
// usable; construct with New.
type Extractor struct {
	window int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWindow overrides the proximity window used when pairing relation
// phrases with nearby item numbers. Values < 1 fall back to DefaultWindow.
func WithWindow(chars int) Option {
	return func(e *Extractor) {
		if chars > 0 {
			e.window = chars
		}
	}
}

// New creates an Extractor with the default window unless overridden.
func New(opts ...Option) *Extractor {
	e := &Extractor{window: DefaultWindow}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// itemNumbersAround collects item-number tokens within the window around
// anchor. Offsets are byte indices; descriptions are ASCII in practice so the
// window is effectively character-sized.
func (e *Extractor) itemNumbersAround(text string, anchor int) []string {
	start := anchor - e.window
	if start < 0 {
		start = 0
	}
	end := anchor + e.window
	if end > len(text) {
		end = len(text)
	}
	return itemNumberRE.FindAllString(text[start:end], -1)
}

// expandItemList pulls every item number out of a matched list segment,
// dropping repeats while preserving first-seen order.
func expandItemList(segment string) []string {
	numbers := itemNumberRE.FindAllString(segment, -1)
	seen := make(map[string]bool, len(numbers))
	out := numbers[:0]
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
