// mkfixture writes a small synthetic MBS XML schedule for local runs and
// integration tests. Descriptions are templated so every relation and
// constraint pattern family appears at least once.
// Usage: go run ./cmd/mkfixture --out testdata/mbs-small.xml --items 60
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// templates cycle through the pattern families the extractors recognise.
// %d placeholders are filled with nearby item numbers so proximity scans
// find real targets.
var templates = []string{
	"Professional attendance by a general practitioner, not being a service associated with a service to which item %d or %d applies, lasting at least 20 minutes.",
	"Attendance of more than 45 minutes duration, not payable on the same day as item %d. Applicable only once per lifetime.",
	"Consultation, each attendance, other than a service to which item %d applies, in consulting rooms. Maximum of 5 times per 12 months.",
	"Initial specialist attendance following referral. This item may be claimed on the same day as item %d. Duration of 15 to 30 minutes.",
	"Subsequent attendance where item %d has been claimed in the preceding 12 months. Not to be performed more than once every 14 days.",
	"Service in a residential aged care facility by a nurse practitioner, at least 1 hour in duration, claimable once per week.",
	"Telehealth attendance by video where the patient is aged 65 years or over, not with item %d on the same occasion.",
	"Fee for item %d derived from the schedule fee for item %d. Applicable to a patient aged between 4 and 12 years.",
	"Attendance at a hospital, after the first 30 minutes, each 15 minutes or part thereof: (a) the patient is referred by a specialist; and (b) the service is not associated with anaesthesia.",
	"Chronic disease management plan, once only in a 12 month period, and not within 3 months of a service to which item %d applies.",
	"Group therapy of approximately 60 minutes, minimum of 6 patients, provided by a clinical psychologist in consulting rooms.",
	"Attendance lasting less than 20 minutes, items %d, %d, %d and %d do not apply, single course of treatment.",
}

var categories = []struct {
	cat   string
	group string
	fee   float64
}{
	{"1", "A1", 41.40},
	{"1", "A2", 81.70},
	{"2", "D1", 120.05},
	{"3", "T8", 345.90},
	{"8", "M6", 98.25},
}

func main() {
	out := flag.String("out", "testdata/mbs-small.xml", "output XML path")
	items := flag.Int("items", 60, "number of items to generate")
	start := flag.Int("start", 3, "first item number")
	flag.Parse()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<MBS_XML>\n")
	for i := 0; i < *items; i++ {
		num := *start + i*9
		tmpl := templates[i%len(templates)]
		cat := categories[i%len(categories)]

		// fill placeholders with neighbouring item numbers, never our own
		refs := []any{}
		for j := 1; j <= strings.Count(tmpl, "%d"); j++ {
			refs = append(refs, num+j*9)
		}
		desc := fmt.Sprintf(tmpl, refs...)

		b.WriteString("  <Data>\n")
		fmt.Fprintf(&b, "    <ItemNum>%d</ItemNum>\n", num)
		fmt.Fprintf(&b, "    <Category>%s</Category>\n", cat.cat)
		fmt.Fprintf(&b, "    <Group>%s</Group>\n", cat.group)
		fmt.Fprintf(&b, "    <ScheduleFee>%.2f</ScheduleFee>\n", cat.fee)
		fmt.Fprintf(&b, "    <ItemStartDate>01.07.2025</ItemStartDate>\n")
		fmt.Fprintf(&b, "    <Description>%s</Description>\n", xmlEscape(desc))
		if i%len(templates) == 7 {
			fmt.Fprintf(&b, "    <DerivedFee>The fee for item %d, plus $25.05</DerivedFee>\n", num+9)
		}
		b.WriteString("  </Data>\n")
	}
	b.WriteString("</MBS_XML>\n")

	if err := os.WriteFile(*out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d items to %s\n", *items, *out)
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
