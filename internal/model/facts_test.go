package model

import "testing"

func TestRelationType_Valid(t *testing.T) {
	for _, rt := range AllRelationTypes {
		if !rt.Valid() {
			t.Errorf("%s should be valid", rt)
		}
	}
	if RelationType("bogus").Valid() {
		t.Error("bogus relation type should be invalid")
	}
}

func TestConstraintType_Valid(t *testing.T) {
	for _, ct := range AllConstraintTypes {
		if !ct.Valid() {
			t.Errorf("%s should be valid", ct)
		}
	}
	if ConstraintType("bogus").Valid() {
		t.Error("bogus constraint type should be invalid")
	}
}

func TestGroupConstraints(t *testing.T) {
	cons := []Constraint{
		{ItemNum: "23", Type: ConLocation, Value: "hospital"},
		{ItemNum: "23", Type: ConDurationMinMinutes, Value: "20"},
		{ItemNum: "23", Type: ConLocation, Value: "consulting rooms"},
	}
	grouped := GroupConstraints(cons)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}
	locs := grouped[ConLocation]
	if len(locs) != 2 || locs[0].Value != "hospital" || locs[1].Value != "consulting rooms" {
		t.Errorf("location group order not preserved: %+v", locs)
	}
	if _, ok := grouped[ConTelehealth]; ok {
		t.Error("empty type should be absent from the map")
	}
}

func TestRelation_CopyValues(t *testing.T) {
	target := "36"
	r := Relation{ItemNum: "23", Type: RelSameDayExcludes, TargetItemNum: &target, Detail: "not on the same day as item"}
	vals := r.CopyValues()
	if len(vals) != len(RelationColumns()) {
		t.Fatalf("values/columns mismatch: %d vs %d", len(vals), len(RelationColumns()))
	}
	if vals[0] != "23" || vals[1] != "same_day_excludes" {
		t.Errorf("unexpected values: %v", vals)
	}

	generic := Relation{ItemNum: "3", Type: RelGenericExcludes, Detail: "x"}
	if generic.CopyValues()[2] != (*string)(nil) {
		t.Error("nil target must stay nil in the copy row")
	}
}

func TestConstraint_CopyValues(t *testing.T) {
	c := Constraint{ItemNum: "23", Type: ConTelehealth, Value: "true"}
	vals := c.CopyValues()
	if len(vals) != len(ConstraintColumns()) {
		t.Fatalf("values/columns mismatch: %d vs %d", len(vals), len(ConstraintColumns()))
	}
	if vals[1] != "telehealth" || vals[2] != "true" {
		t.Errorf("unexpected values: %v", vals)
	}
}
