package extract

import (
	"reflect"
	"testing"

	"github.com/gyeh/mbsfacts/internal/model"
)

func hasConstraint(cons []model.Constraint, t model.ConstraintType, value string) bool {
	for _, c := range cons {
		if c.Type == t && c.Value == value {
			return true
		}
	}
	return false
}

func TestConstraints_DurationMin(t *testing.T) {
	ex := New()
	cons := ex.Constraints("23", "Professional attendance lasting at least 20 minutes.")
	if !hasConstraint(cons, model.ConDurationMinMinutes, "20") {
		t.Fatalf("missing duration_min_minutes=20, got %+v", cons)
	}
}

func TestConstraints_DurationRange(t *testing.T) {
	ex := New()
	cons := ex.Constraints("36", "Attendance of 6 to 20 minutes duration.")
	if !hasConstraint(cons, model.ConDurationMinMinutes, "6") {
		t.Errorf("missing duration_min_minutes=6, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConDurationMaxMinutes, "20") {
		t.Errorf("missing duration_max_minutes=20, got %+v", cons)
	}
}

func TestConstraints_DurationBounds(t *testing.T) {
	ex := New()
	tests := []struct {
		desc string
		want []model.Constraint
	}{
		{
			"Attendance lasting at least 6 minutes and less than 20 minutes.",
			[]model.Constraint{
				{Type: model.ConDurationMinMinutes, Value: "6"},
				{Type: model.ConDurationMaxMinutes, Value: "20"},
			},
		},
		{
			"Consultation of 30 minutes or more.",
			[]model.Constraint{{Type: model.ConDurationMinMinutes, Value: "30"}},
		},
		{
			"Consultation of 20 minutes or less.",
			[]model.Constraint{{Type: model.ConDurationMaxMinutes, Value: "20"}},
		},
		{
			"Group session of approximately 60 minutes.",
			[]model.Constraint{{Type: model.ConDurationMinMinutes, Value: "60"}},
		},
		{
			"Assessment of about 10 minutes.",
			[]model.Constraint{{Type: model.ConDurationMinMinutes, Value: "10"}},
		},
		{
			"Attendance of up to 15 minutes.",
			[]model.Constraint{{Type: model.ConDurationMaxMinutes, Value: "15"}},
		},
		{
			"Attendance of no more than 40 minutes.",
			[]model.Constraint{{Type: model.ConDurationMaxMinutes, Value: "40"}},
		},
	}
	for _, tt := range tests {
		cons := ex.Constraints("23", tt.desc)
		for _, w := range tt.want {
			if !hasConstraint(cons, w.Type, w.Value) {
				t.Errorf("%q: missing %s=%s, got %+v", tt.desc, w.Type, w.Value, cons)
			}
		}
	}
}

func TestConstraints_HoursAndRangeCombined(t *testing.T) {
	ex := New()
	cons := ex.Constraints("2801", "Attendance of at least 1 hour and 45–60 minutes of counselling.")

	if !hasConstraint(cons, model.ConDurationMinMinutes, "60") {
		t.Errorf("hour bound should convert to 60 minutes, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConDurationMinMinutes, "45") {
		t.Errorf("missing range lower bound 45, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConDurationMaxMinutes, "60") {
		t.Errorf("missing range upper bound 60, got %+v", cons)
	}
}

func TestConstraints_EveryPeriodCanonicalization(t *testing.T) {
	ex := New()
	tests := []struct {
		desc string
		want string
	}{
		{"Claimable once every 7 days.", "1/week"},
		{"Claimable once every 14 days.", "1/2weeks"},
		{"Claimable once every 3 days.", "1/3days"},
		{"Claimable once every 1 day.", "1/day"},
		{"Claimable once every 2 weeks.", "1/week"},
		{"Claimable once every 1 year.", "1/year"},
	}
	for _, tt := range tests {
		cons := ex.Constraints("900", tt.desc)
		if !hasConstraint(cons, model.ConMaxPerWindow, tt.want) {
			t.Errorf("%q: missing max_per_window=%s, got %+v", tt.desc, tt.want, cons)
		}
	}
}

func TestConstraints_FrequencyWindows(t *testing.T) {
	ex := New()

	cons := ex.Constraints("721", "Maximum of 5 times in 12 months.")
	if !hasConstraint(cons, model.ConMaxPer12Months, "5") {
		t.Errorf("missing max_per_12_months=5, got %+v", cons)
	}

	cons = ex.Constraints("723", "No more than 3 services per week.")
	if !hasConstraint(cons, model.ConMaxPerWindow, "3/week") {
		t.Errorf("missing max_per_window=3/week, got %+v", cons)
	}

	cons = ex.Constraints("732", "Applicable once per year.")
	if !hasConstraint(cons, model.ConMaxPerWindow, "1/year") {
		t.Errorf("missing max_per_window=1/year, got %+v", cons)
	}
}

func TestConstraints_Cooldowns(t *testing.T) {
	ex := New()

	cons := ex.Constraints("707", "Not within 12 months of a previous service.")
	if !hasConstraint(cons, model.ConCooldownMonths, "12") {
		t.Errorf("missing cooldown_months=12, got %+v", cons)
	}

	cons = ex.Constraints("703", "Where item 701 applies in the preceding 14 days.")
	if !hasConstraint(cons, model.ConCooldownDays, "14") {
		t.Errorf("missing cooldown_days=14, got %+v", cons)
	}

	cons = ex.Constraints("705", "Not claimable within 2 years of item 704.")
	if !hasConstraint(cons, model.ConCooldownYears, "2") {
		t.Errorf("missing cooldown_years=2, got %+v", cons)
	}
}

func TestConstraints_OncePerLifetime(t *testing.T) {
	ex := New()
	cons := ex.Constraints("709", "This service is applicable once per lifetime.")
	if !hasConstraint(cons, model.ConOncePerLifetime, "true") {
		t.Fatalf("missing once_per_lifetime, got %+v", cons)
	}
}

func TestConstraints_ReferralSpecificity(t *testing.T) {
	// Specific referral kinds add their own fact without suppressing the
	// generic flag.
	ex := New()

	cons := ex.Constraints("104", "Specialist referral required before the attendance.")
	if !hasConstraint(cons, model.ConRequiresReferral, "true") {
		t.Errorf("missing generic requires_referral, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConRequiresReferral, "specialist") {
		t.Errorf("missing specialist requires_referral, got %+v", cons)
	}

	cons = ex.Constraints("110", "Attendance following gp referral.")
	if !hasConstraint(cons, model.ConRequiresReferral, "true") {
		t.Errorf("missing generic requires_referral, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConRequiresReferral, "gp") {
		t.Errorf("missing gp requires_referral, got %+v", cons)
	}
}

func TestConstraints_LetteredClauses(t *testing.T) {
	ex := New()
	desc := "Applicable if: (a) the patient is an admitted patient; and (b) the service lasts at least 45 minutes;\n"
	cons := ex.Constraints("2713", desc)

	if !hasConstraint(cons, model.ConRequirement, "(a) the patient is an admitted patient") {
		t.Errorf("missing clause (a), got %+v", cons)
	}
	if !hasConstraint(cons, model.ConRequirement, "(b) the service lasts at least 45 minutes") {
		t.Errorf("missing clause (b), got %+v", cons)
	}
	if !hasConstraint(cons, model.ConDurationMinMinutes, "45") {
		t.Errorf("missing duration from clause text, got %+v", cons)
	}
}

func TestConstraints_LocationAndProvider(t *testing.T) {
	ex := New()
	desc := "Attendance in consulting rooms by a general practitioner."
	cons := ex.Constraints("3", desc)

	if !hasConstraint(cons, model.ConLocation, "consulting rooms") {
		t.Errorf("missing location, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConProvider, "general practitioner") {
		t.Errorf("missing provider, got %+v", cons)
	}
	// "general practitioner" must not also trip the "general practice" entry.
	if hasConstraint(cons, model.ConLocation, "general practice") {
		t.Errorf("false positive location match, got %+v", cons)
	}
}

func TestConstraints_AgeBounds(t *testing.T) {
	ex := New()

	cons := ex.Constraints("10990", "Patient aged 65 years or older.")
	if !hasConstraint(cons, model.ConAgeMinYears, "65") {
		t.Errorf("missing age_min_years=65, got %+v", cons)
	}

	cons = ex.Constraints("10991", "Patient under 12 years of age.")
	if !hasConstraint(cons, model.ConAgeMaxYears, "12") {
		t.Errorf("missing age_max_years=12, got %+v", cons)
	}

	cons = ex.Constraints("10992", "Service for a person at least 18 years of age.")
	if !hasConstraint(cons, model.ConAgeMinYears, "18") {
		t.Errorf("missing age_min_years=18, got %+v", cons)
	}
}

func TestConstraints_Telehealth(t *testing.T) {
	ex := New()
	cons := ex.Constraints("91800", "Telehealth attendance by video.")
	if !hasConstraint(cons, model.ConTelehealth, "true") {
		t.Fatalf("missing telehealth flag, got %+v", cons)
	}
}

func TestConstraints_AttendanceAndCourseFlags(t *testing.T) {
	ex := New()

	cons := ex.Constraints("300", "Initial attendance in a single course of treatment.")
	if !hasConstraint(cons, model.ConInitialAttendance, "true") {
		t.Errorf("missing initial_attendance, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConSingleCourse, "true") {
		t.Errorf("missing single_course_of_treatment, got %+v", cons)
	}

	cons = ex.Constraints("302", "Subsequent attendance for review.")
	if !hasConstraint(cons, model.ConSubsequentAttendance, "true") {
		t.Errorf("missing subsequent_attendance, got %+v", cons)
	}
}

func TestConstraints_SameDayAndOccasion(t *testing.T) {
	ex := New()
	cons := ex.Constraints("55", "Both services performed on the same day, on the same occasion.")
	if !hasConstraint(cons, model.ConSameDayOnly, "true") {
		t.Errorf("missing same_day_only, got %+v", cons)
	}
	if !hasConstraint(cons, model.ConSameOccasion, "true") {
		t.Errorf("missing same_occasion, got %+v", cons)
	}
}

func TestConstraints_Deduplicated(t *testing.T) {
	ex := New()
	cons := ex.Constraints("44", "At least 20 minutes. The attendance requires at least 20 minutes.")

	n := 0
	for _, c := range cons {
		if c.Type == model.ConDurationMinMinutes && c.Value == "20" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("duration_min_minutes=20 appears %d times, want 1", n)
	}
}

func TestConstraints_EmptyInput(t *testing.T) {
	ex := New()
	if cons := ex.Constraints("23", ""); cons != nil {
		t.Fatalf("empty input should yield nil, got %+v", cons)
	}
}

func TestConstraints_Deterministic(t *testing.T) {
	ex := New()
	desc := "Initial attendance of at least 45 minutes in consulting rooms by a specialist, " +
		"following referral, not within 12 months of item 132."
	first := ex.Constraints("132", desc)
	for i := 0; i < 5; i++ {
		if got := ex.Constraints("132", desc); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n got %+v\nwant %+v", i, got, first)
		}
	}
}
