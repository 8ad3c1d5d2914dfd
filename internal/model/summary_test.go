package model

import "testing"

func TestCoverage_Observe(t *testing.T) {
	cov := NewCoverage()
	target := "36"
	cov.Observe(40, []Relation{{ItemNum: "23", Type: RelExcludes, TargetItemNum: &target}}, nil)
	cov.Observe(80, nil, []Constraint{{ItemNum: "36", Type: ConTelehealth, Value: "true"}})
	cov.Observe(10, nil, nil)

	if cov.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", cov.TotalItems)
	}
	if cov.ItemsWithRelations != 1 || cov.ItemsWithConstraints != 1 || cov.ItemsWithBoth != 0 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/0",
			cov.ItemsWithRelations, cov.ItemsWithConstraints, cov.ItemsWithBoth)
	}
	if cov.RelationCounts[RelExcludes] != 1 {
		t.Errorf("RelationCounts[excludes] = %d, want 1", cov.RelationCounts[RelExcludes])
	}
	if cov.DescLengthMin != 10 || cov.DescLengthMax != 80 {
		t.Errorf("length bounds = %d/%d, want 10/80", cov.DescLengthMin, cov.DescLengthMax)
	}
}

func TestCoverage_Merge(t *testing.T) {
	a := NewCoverage()
	a.Observe(40, []Relation{{Type: RelExcludes}}, []Constraint{{Type: ConLocation}})
	b := NewCoverage()
	b.Observe(100, nil, []Constraint{{Type: ConLocation}, {Type: ConProvider}})
	b.Observe(5, nil, nil)

	a.Merge(b)
	if a.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", a.TotalItems)
	}
	if a.ConstraintCounts[ConLocation] != 2 {
		t.Errorf("ConstraintCounts[location] = %d, want 2", a.ConstraintCounts[ConLocation])
	}
	if a.DescLengthMin != 5 || a.DescLengthMax != 100 {
		t.Errorf("length bounds = %d/%d, want 5/100", a.DescLengthMin, a.DescLengthMax)
	}
}

func TestCoverage_MergeEmptyPartial(t *testing.T) {
	a := NewCoverage()
	a.Observe(40, nil, nil)
	a.Merge(NewCoverage())

	if a.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", a.TotalItems)
	}
	if a.MinDescLength() != 40 {
		t.Errorf("MinDescLength = %d, want 40", a.MinDescLength())
	}
}

func TestCoverage_EmptyRunSafe(t *testing.T) {
	cov := NewCoverage()
	if cov.RelationsPct() != 0 || cov.ConstraintsPct() != 0 || cov.BothPct() != 0 {
		t.Error("percentages on an empty run must be 0")
	}
	if cov.AvgDescLength() != 0 {
		t.Errorf("AvgDescLength = %f, want 0", cov.AvgDescLength())
	}
	if cov.MinDescLength() != 0 {
		t.Errorf("MinDescLength = %d, want 0", cov.MinDescLength())
	}
}

func TestCoverage_Percentages(t *testing.T) {
	cov := NewCoverage()
	cov.Observe(10, []Relation{{Type: RelExcludes}}, []Constraint{{Type: ConLocation}})
	cov.Observe(20, []Relation{{Type: RelExcludes}}, nil)
	cov.Observe(30, nil, nil)
	cov.Observe(40, nil, nil)

	if got := cov.RelationsPct(); got != 50 {
		t.Errorf("RelationsPct = %f, want 50", got)
	}
	if got := cov.ConstraintsPct(); got != 25 {
		t.Errorf("ConstraintsPct = %f, want 25", got)
	}
	if got := cov.BothPct(); got != 25 {
		t.Errorf("BothPct = %f, want 25", got)
	}
	if got := cov.AvgDescLength(); got != 25 {
		t.Errorf("AvgDescLength = %f, want 25", got)
	}
}
