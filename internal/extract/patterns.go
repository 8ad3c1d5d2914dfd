package extract

import (
	"regexp"
	"strings"
)

// The pattern library. Everything here is compiled once at package init and
// never mutated, so the extractors are safe to call concurrently.

// itemNumberPat matches a bare 1–5 digit item-number token.
const itemNumberPat = `\b\d{1,5}\b`

var itemNumberRE = regexp.MustCompile(itemNumberPat)

// itemListRE matches "item 106" and "items 106, 109, 125 or 16401" forms,
// capturing the whole number list as group 1.
var itemListRE = regexp.MustCompile(
	`(?i)\bitems?\s+((?:` + itemNumberPat + `(?:\s*,\s*|\s+or\s+|\s+and\s+))*` + itemNumberPat + `)`)

// singleItemRE matches a standalone "item N" mention.
var singleItemRE = regexp.MustCompile(`(?i)\bitem\s+(` + itemNumberPat + `)`)

// relationPhrase pairs the phrase source text (recorded as the relation's
// detail for auditability) with its compiled matcher.
type relationPhrase struct {
	phrase string
	re     *regexp.Regexp
}

func compilePhrases(phrases []string) []relationPhrase {
	out := make([]relationPhrase, len(phrases))
	for i, p := range phrases {
		out[i] = relationPhrase{phrase: p, re: regexp.MustCompile(`(?i)` + p)}
	}
	return out
}

// Relation phrase sets, one per relation type. Ordering within a set only
// decides which phrase ends up in the detail text when several variants of
// the same wording match.
var (
	excludePhrases = compilePhrases([]string{
		`other than a service to which item`,
		`not in association with item`,
		`not claimable with item`,
		`not being a service to which item`,
	})
	genericExcludePhrases = compilePhrases([]string{
		`other than a service to which another item in the table applies`,
	})
	sameDayExcludePhrases = compilePhrases([]string{
		`not on the same day as item`,
		`must not be performed on the same day as item`,
	})
	allowSameDayPhrases = compilePhrases([]string{
		`may be claimed on the same day as item`,
		`can be performed on the same day as item`,
	})
	prereqPhrases = compilePhrases([]string{
		`after the initial attendance`,
		`following referral`,
		`requires (?:a )?service to which item`,
	})
)

// Constraint patterns.
var (
	oncePerLifeRE     = regexp.MustCompile(`(?i)\bonce per lifetime\b`)
	precedingMonthsRE = regexp.MustCompile(`(?i)\bpreceding\s+(\d+)\s+months\b`)
	maxTimesInWindowRE = regexp.MustCompile(
		`(?i)\b(?:no more than|not more than|maximum of)\s+(\d+)\s+(?:times|services?)\s+in\s+(\d+)\s+months\b`)
	maxPerWindowRE = regexp.MustCompile(
		`(?i)\b(?:no more than|not more than|maximum of)\s+(\d+)\s+(?:times|services?)\s+per\s+(day|week|month|year)\b`)
	oncePerWindowRE   = regexp.MustCompile(`(?i)\bonce per\s+(day|week|month|year)\b`)
	cooldownGenericRE = regexp.MustCompile(`(?i)\b(?:not within|preceding)\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)
	sameOccasionRE    = regexp.MustCompile(`(?i)\bsame (?:occasion|visit)\b`)
	sameDayOnlyRE     = regexp.MustCompile(`(?i)\bon the same day\b`)

	durationMinRE      = regexp.MustCompile(`(?i)\bat least\s+(\d+)\s+minutes\b`)
	durationMaxRE      = regexp.MustCompile(`(?i)\b(?:less than|up to|no more than)\s+(\d+)\s+minutes\b`)
	durationMinHoursRE = regexp.MustCompile(`(?i)\bat least\s+(\d+)\s+hours?\b`)
	durationRangeRE    = regexp.MustCompile(`(?i)\b(\d+)\s*(?:to|-|–)\s*(\d+)\s+minutes\b`)
	durationHoursRE    = regexp.MustCompile(`(?i)\b(\d+)\s+hours?\b`)
	durationApproxRE   = regexp.MustCompile(`(?i)\bapproximately\s+(\d+)\s+minutes?\b`)
	durationAboutRE    = regexp.MustCompile(`(?i)\babout\s+(\d+)\s+minutes?\b`)
	durationOrMoreRE   = regexp.MustCompile(`(?i)\b(\d+)\s+minutes?\s+or\s+more\b`)
	durationOrLessRE   = regexp.MustCompile(`(?i)\b(\d+)\s+minutes?\s+or\s+less\b`)

	everyPeriodRE = regexp.MustCompile(`(?i)\bevery\s+(\d+)\s+(day|week|month|year)s?\b`)
	perYearRE     = regexp.MustCompile(`(?i)\bnot more than\s+(\d+)\s+(?:times|services?)\s+per\s+year\b`)
	perMonthRE    = regexp.MustCompile(`(?i)\bnot more than\s+(\d+)\s+(?:times|services?)\s+per\s+month\b`)
	perWeekRE     = regexp.MustCompile(`(?i)\bnot more than\s+(\d+)\s+(?:times|services?)\s+per\s+week\b`)
	perDayRE      = regexp.MustCompile(`(?i)\bnot more than\s+(\d+)\s+(?:times|services?)\s+per\s+day\b`)

	withinPeriodRE = regexp.MustCompile(`(?i)\bwithin\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)
	afterPeriodRE  = regexp.MustCompile(`(?i)\bafter\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)

	ageMinRE = regexp.MustCompile(`(?i)\bat least\s+(\d+)\s+years?\b|\baged\s+(\d+)\s+years?\s+or\s+older\b`)
	ageMaxRE = regexp.MustCompile(`(?i)\bunder\s+(\d+)\s+years?\b|\baged\s+(\d+)\s+years?\s+or\s+younger\b`)

	telehealthRE = regexp.MustCompile(`(?i)\btelehealth|video attendance\b`)

	// letteredClauseRE captures "(a) text;" requirement segments, ending at
	// the next semicolon or newline.
	letteredClauseRE = regexp.MustCompile(`(?i)\(([a-z])\)\s*([^;\n]+)[;\n]`)

	referralRE           = regexp.MustCompile(`(?i)\bfollowing referral|valid referral|referral\b`)
	initialAttRE         = regexp.MustCompile(`(?i)\binitial attendance\b`)
	subsequentAttRE      = regexp.MustCompile(`(?i)\bsubsequent attendance\b`)
	singleCourseRE       = regexp.MustCompile(`(?i)\bsingle course of treatment\b`)
	referralRequiredRE   = regexp.MustCompile(`(?i)\breferral required|requires referral|must be referred\b`)
	specialistReferralRE = regexp.MustCompile(`(?i)\breferral required from specialist|specialist referral|referral to specialist\b`)
	gpReferralRE         = regexp.MustCompile(`(?i)\bgp referral|referral from gp|general practitioner referral|must be referred from gp\b`)
	treatmentPlanRE      = regexp.MustCompile(`(?i)\btreatment plan|management plan\b`)
	continuingRE         = regexp.MustCompile(`(?i)\bcontinuing treatment|ongoing treatment\b`)
	firstVisitRE         = regexp.MustCompile(`(?i)\bfirst visit|first attendance|initial visit\b`)
	followUpRE           = regexp.MustCompile(`(?i)\bfollow.?up|follow.?up visit\b`)
)

// vocabEntry is one controlled-vocabulary string with its compiled
// whole-phrase matcher.
type vocabEntry struct {
	value string
	re    *regexp.Regexp
}

func compileVocab(values []string) []vocabEntry {
	out := make([]vocabEntry, len(values))
	for i, v := range values {
		out[i] = vocabEntry{value: v, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(v)) + `\b`)}
	}
	return out
}

// locationVocab is the controlled list of service-location strings. A match
// emits the vocabulary string itself as the constraint value.
var locationVocab = compileVocab([]string{
	"consulting rooms",
	"hospital",
	"home",
	"residential aged care facility",
	"emergency department",
	"intensive care unit",
	"icu",
	"theatre",
	"outpatient",
	"inpatient",
	"clinic",
	"medical centre",
	"general practice",
	"specialist rooms",
	"day surgery",
	"day procedure unit",
	"recovery room",
	"ward",
	"private hospital",
	"public hospital",
	"community health centre",
	"mental health facility",
	"rehabilitation centre",
	"palliative care unit",
	"maternity ward",
	"paediatric ward",
	"cardiac unit",
	"neurology unit",
	"oncology unit",
	"radiology department",
	"pathology laboratory",
	"pharmacy",
	"dental surgery",
	"physiotherapy clinic",
	"occupational therapy",
	"speech therapy",
	"dietitian clinic",
	"psychology clinic",
	"counselling centre",
	"telehealth",
	"video consultation",
	"phone consultation",
	"remote consultation",
})

// providerVocab is the controlled list of provider-role strings.
var providerVocab = compileVocab([]string{
	"general practitioner",
	"specialist",
	"consultant physician",
	"medical practitioner",
	"practice nurse",
	"gp registrar",
	"diagnostic radiologist",
	"surgeon",
	"anaesthetist",
	"psychiatrist",
	"psychologist",
	"physiotherapist",
	"occupational therapist",
	"speech therapist",
	"dietitian",
	"pharmacist",
	"dentist",
	"dental specialist",
	"nurse practitioner",
	"midwife",
	"mental health nurse",
	"community health nurse",
	"palliative care nurse",
	"oncology nurse",
	"cardiac nurse",
	"diabetes educator",
	"social worker",
	"counsellor",
	"mental health worker",
	"allied health professional",
	"health professional",
	"healthcare professional",
	"medical specialist",
	"surgical specialist",
	"paediatrician",
	"geriatrician",
	"cardiologist",
	"neurologist",
	"oncologist",
	"dermatologist",
	"ophthalmologist",
	"orthopaedic surgeon",
	"plastic surgeon",
	"neurosurgeon",
	"cardiothoracic surgeon",
	"urologist",
	"gynaecologist",
	"obstetrician",
	"endocrinologist",
	"gastroenterologist",
	"respiratory physician",
	"rheumatologist",
	"nephrologist",
	"haematologist",
	"pathologist",
	"radiologist",
	"nuclear medicine physician",
	"emergency physician",
	"intensive care physician",
	"palliative care physician",
	"rehabilitation physician",
	"sports physician",
	"occupational physician",
	"public health physician",
	"forensic physician",
	"medical officer",
	"resident medical officer",
	"registrar",
	"resident",
	"intern",
	"medical student",
	"nursing student",
	"allied health student",
})
