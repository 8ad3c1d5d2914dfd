package model

// RelationType classifies a directed fact linking one item to another.
// Values match the strings stored in mbs.relations.relation_type.
type RelationType string

const (
	RelExcludes        RelationType = "excludes"
	RelSameDayExcludes RelationType = "same_day_excludes"
	RelAllowsSameDay   RelationType = "allows_same_day"
	RelPrerequisite    RelationType = "prerequisite"
	RelDerivedFeeRef   RelationType = "derived_fee_ref"
	RelGenericExcludes RelationType = "generic_excludes"
)

// AllRelationTypes lists the relation types in canonical order.
var AllRelationTypes = []RelationType{
	RelExcludes,
	RelSameDayExcludes,
	RelAllowsSameDay,
	RelPrerequisite,
	RelDerivedFeeRef,
	RelGenericExcludes,
}

// Valid reports whether t is a known relation type.
func (t RelationType) Valid() bool {
	for _, rt := range AllRelationTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// ConstraintType classifies an applicability condition on a single item.
// Values match the strings stored in mbs.constraints.constraint_type.
type ConstraintType string

const (
	ConOncePerLifetime      ConstraintType = "once_per_lifetime"
	ConMaxPer12Months       ConstraintType = "max_per_12_months"
	ConMaxPerWindow         ConstraintType = "max_per_window" // value like "1/day" or "2/month"
	ConCooldownDays         ConstraintType = "cooldown_days"
	ConCooldownWeeks        ConstraintType = "cooldown_weeks"
	ConCooldownMonths       ConstraintType = "cooldown_months"
	ConCooldownYears        ConstraintType = "cooldown_years"
	ConSameDayOnly          ConstraintType = "same_day_only"
	ConSameOccasion         ConstraintType = "same_occasion"
	ConLocation             ConstraintType = "location"
	ConDurationMinMinutes   ConstraintType = "duration_min_minutes"
	ConDurationMaxMinutes   ConstraintType = "duration_max_minutes"
	ConProvider             ConstraintType = "provider"
	ConAgeMinYears          ConstraintType = "age_min_years"
	ConAgeMaxYears          ConstraintType = "age_max_years"
	ConTelehealth           ConstraintType = "telehealth"
	ConRequirement          ConstraintType = "requirement"
	ConRequiresReferral     ConstraintType = "requires_referral"
	ConInitialAttendance    ConstraintType = "initial_attendance"
	ConSubsequentAttendance ConstraintType = "subsequent_attendance"
	ConSingleCourse         ConstraintType = "single_course_of_treatment"
)

// AllConstraintTypes lists the constraint types in canonical order. Grouped
// displays iterate in this order.
var AllConstraintTypes = []ConstraintType{
	ConOncePerLifetime,
	ConMaxPer12Months,
	ConMaxPerWindow,
	ConCooldownDays,
	ConCooldownWeeks,
	ConCooldownMonths,
	ConCooldownYears,
	ConSameDayOnly,
	ConSameOccasion,
	ConLocation,
	ConDurationMinMinutes,
	ConDurationMaxMinutes,
	ConProvider,
	ConAgeMinYears,
	ConAgeMaxYears,
	ConTelehealth,
	ConRequirement,
	ConRequiresReferral,
	ConInitialAttendance,
	ConSubsequentAttendance,
	ConSingleCourse,
}

// Valid reports whether t is a known constraint type.
func (t ConstraintType) Valid() bool {
	for _, ct := range AllConstraintTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Relation is a directed fact between two items (TargetItemNum is nil only
// for generic_excludes). Detail records the phrase that triggered the match.
type Relation struct {
	ItemNum       string
	Type          RelationType
	TargetItemNum *string
	Detail        string
}

// RelationColumns returns the COPY column order for mbs.relations.
func RelationColumns() []string {
	return []string{"item_num", "relation_type", "target_item_num", "detail"}
}

// CopyValues returns the relation's values in COPY column order.
func (r *Relation) CopyValues() []any {
	return []any{r.ItemNum, string(r.Type), r.TargetItemNum, r.Detail}
}

// Constraint is an applicability fact on a single item.
type Constraint struct {
	ItemNum string
	Type    ConstraintType
	Value   string
}

// ConstraintColumns returns the COPY column order for mbs.constraints.
func ConstraintColumns() []string {
	return []string{"item_num", "constraint_type", "value"}
}

// CopyValues returns the constraint's values in COPY column order.
func (c *Constraint) CopyValues() []any {
	return []any{c.ItemNum, string(c.Type), c.Value}
}

// GroupConstraints buckets constraints by type, iterable in the order of
// AllConstraintTypes. Types with no constraints are absent from the map.
func GroupConstraints(cons []Constraint) map[ConstraintType][]Constraint {
	grouped := make(map[ConstraintType][]Constraint)
	for _, c := range cons {
		grouped[c.Type] = append(grouped[c.Type], c)
	}
	return grouped
}
