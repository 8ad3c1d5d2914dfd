package extract

import (
	"strconv"
	"strings"

	"github.com/gyeh/mbsfacts/internal/model"
)

// Constraints scans the full description for applicability conditions and
// returns them in first-seen order with exact-duplicate tuples collapsed.
// Unlike relation matching this is not windowed: constraints are standalone
// textual facts. Empty description yields nil.
func (e *Extractor) Constraints(itemNum, description string) []model.Constraint {
	var cons []model.Constraint
	text := description

	add := func(t model.ConstraintType, value string) {
		cons = append(cons, model.Constraint{ItemNum: itemNum, Type: t, Value: value})
	}

	if oncePerLifeRE.MatchString(text) {
		add(model.ConOncePerLifetime, "true")
	}

	if m := precedingMonthsRE.FindStringSubmatch(text); m != nil {
		add(model.ConCooldownMonths, m[1])
	}

	if m := maxTimesInWindowRE.FindStringSubmatch(text); m != nil && m[2] == "12" {
		add(model.ConMaxPer12Months, m[1])
	}

	// General frequency windows.
	for _, m := range maxPerWindowRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, m[1]+"/"+strings.ToLower(m[2]))
	}
	for _, m := range oncePerWindowRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, "1/"+strings.ToLower(m[1]))
	}

	// Generic cooldowns ("not within"/"preceding" N units).
	for _, m := range cooldownGenericRE.FindAllStringSubmatch(text, -1) {
		add(cooldownType(m[2]), m[1])
	}

	if sameDayOnlyRE.MatchString(text) {
		add(model.ConSameDayOnly, "true")
	}
	if sameOccasionRE.MatchString(text) {
		add(model.ConSameOccasion, "true")
	}

	// Durations. A range emits both bounds; hour-denominated captures are
	// converted to minutes.
	if m := durationRangeRE.FindStringSubmatch(text); m != nil {
		add(model.ConDurationMinMinutes, m[1])
		add(model.ConDurationMaxMinutes, m[2])
	}
	if m := durationMinRE.FindStringSubmatch(text); m != nil {
		add(model.ConDurationMinMinutes, m[1])
	}
	for _, m := range durationMinHoursRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMinMinutes, minutesFromHours(m[1]))
	}
	// Bare "N hours" mention with no qualifier: used as a minimum for safety.
	for _, m := range durationHoursRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMinMinutes, minutesFromHours(m[1]))
	}
	if m := durationMaxRE.FindStringSubmatch(text); m != nil {
		add(model.ConDurationMaxMinutes, m[1])
	}
	for _, m := range durationApproxRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMinMinutes, m[1])
	}
	for _, m := range durationAboutRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMinMinutes, m[1])
	}
	for _, m := range durationOrMoreRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMinMinutes, m[1])
	}
	for _, m := range durationOrLessRE.FindAllStringSubmatch(text, -1) {
		add(model.ConDurationMaxMinutes, m[1])
	}

	// "every N units" canonicalized to a once-per-window frequency.
	for _, m := range everyPeriodRE.FindAllStringSubmatch(text, -1) {
		count, unit := m[1], strings.ToLower(m[2])
		switch {
		case unit == "day" && count == "7":
			add(model.ConMaxPerWindow, "1/week")
		case unit == "day" && count == "14":
			add(model.ConMaxPerWindow, "1/2weeks")
		case unit == "day" && count != "1":
			add(model.ConMaxPerWindow, "1/"+count+"days")
		default:
			add(model.ConMaxPerWindow, "1/"+unit)
		}
	}
	for _, m := range perYearRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, m[1]+"/year")
	}
	for _, m := range perMonthRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, m[1]+"/month")
	}
	for _, m := range perWeekRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, m[1]+"/week")
	}
	for _, m := range perDayRE.FindAllStringSubmatch(text, -1) {
		add(model.ConMaxPerWindow, m[1]+"/day")
	}

	// "within"/"after" N units are also cooldown windows.
	for _, m := range withinPeriodRE.FindAllStringSubmatch(text, -1) {
		add(cooldownType(m[2]), m[1])
	}
	for _, m := range afterPeriodRE.FindAllStringSubmatch(text, -1) {
		add(cooldownType(m[2]), m[1])
	}

	// Controlled vocabularies: every matching entry contributes a fact.
	for _, loc := range locationVocab {
		if loc.re.MatchString(text) {
			add(model.ConLocation, loc.value)
		}
	}
	for _, prov := range providerVocab {
		if prov.re.MatchString(text) {
			add(model.ConProvider, prov.value)
		}
	}

	// Lettered requirement clauses (a), (b), ...
	for _, m := range letteredClauseRE.FindAllStringSubmatch(text, -1) {
		letter := strings.ToLower(m[1])
		clause := strings.TrimSpace(m[2])
		if clause != "" {
			add(model.ConRequirement, "("+letter+") "+clause)
		}
	}

	// Referral, attendance-type, and course flags. Specific referral kinds
	// never suppress the generic flag (or each other).
	if referralRE.MatchString(text) {
		add(model.ConRequiresReferral, "true")
	}
	if initialAttRE.MatchString(text) {
		add(model.ConInitialAttendance, "true")
	}
	if subsequentAttRE.MatchString(text) {
		add(model.ConSubsequentAttendance, "true")
	}
	if singleCourseRE.MatchString(text) {
		add(model.ConSingleCourse, "true")
	}
	if referralRequiredRE.MatchString(text) {
		add(model.ConRequiresReferral, "true")
	}
	if specialistReferralRE.MatchString(text) {
		add(model.ConRequiresReferral, "specialist")
	}
	if gpReferralRE.MatchString(text) {
		add(model.ConRequiresReferral, "gp")
	}
	if treatmentPlanRE.MatchString(text) {
		add(model.ConRequirement, "treatment plan required")
	}
	if continuingRE.MatchString(text) {
		add(model.ConRequirement, "continuing treatment")
	}
	if firstVisitRE.MatchString(text) {
		add(model.ConInitialAttendance, "true")
	}
	if followUpRE.MatchString(text) {
		add(model.ConSubsequentAttendance, "true")
	}

	// Age bounds. The patterns have two alternated capture groups; take
	// whichever matched.
	for _, m := range ageMinRE.FindAllStringSubmatch(text, -1) {
		if v := firstGroup(m); v != "" {
			add(model.ConAgeMinYears, v)
		}
	}
	for _, m := range ageMaxRE.FindAllStringSubmatch(text, -1) {
		if v := firstGroup(m); v != "" {
			add(model.ConAgeMaxYears, v)
		}
	}

	if telehealthRE.MatchString(text) {
		add(model.ConTelehealth, "true")
	}

	return dedupConstraints(cons)
}

// cooldownType maps a (possibly plural) unit word to its cooldown constraint.
func cooldownType(unit string) model.ConstraintType {
	switch {
	case strings.HasPrefix(strings.ToLower(unit), "day"):
		return model.ConCooldownDays
	case strings.HasPrefix(strings.ToLower(unit), "week"):
		return model.ConCooldownWeeks
	case strings.HasPrefix(strings.ToLower(unit), "month"):
		return model.ConCooldownMonths
	default:
		return model.ConCooldownYears
	}
}

// minutesFromHours converts an hour capture to minutes, "0" on bad input.
func minutesFromHours(hours string) string {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return "0"
	}
	return strconv.Itoa(h * 60)
}

// firstGroup returns the first non-empty capture group of a submatch.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// dedupConstraints collapses identical 3-tuples, preserving first-seen order.
func dedupConstraints(cons []model.Constraint) []model.Constraint {
	if len(cons) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(cons))
	out := cons[:0]
	for _, c := range cons {
		key := c.ItemNum + "\x1f" + string(c.Type) + "\x1f" + c.Value
		if !seen[key] {
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}
