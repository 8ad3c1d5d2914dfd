package model

import "time"

// LoadSummary captures metrics from a single schedule load run.
type LoadSummary struct {
	FilePath         string
	FileSHA256       string
	LoadRunID        string
	ItemsParsed      int64
	ItemsLoaded      int64
	RelationsFound   int64
	ConstraintsFound int64
	Coverage         Coverage
	DurationParse    time.Duration
	DurationItems    time.Duration
	DurationExtract  time.Duration
	DurationFacts    time.Duration
	DurationTotal    time.Duration
}

// Coverage is the diagnostic extraction-coverage accumulator. It is purely
// informational; a load never fails because of what is (or is not) in here.
// Workers each fill a private Coverage and the orchestrator merges them.
type Coverage struct {
	TotalItems           int64
	ItemsWithRelations   int64
	ItemsWithConstraints int64
	ItemsWithBoth        int64
	RelationCounts       map[RelationType]int64
	ConstraintCounts     map[ConstraintType]int64
	DescLengthSum        int64
	DescLengthMin        int64
	DescLengthMax        int64
}

// NewCoverage returns a zeroed accumulator ready for Observe calls.
func NewCoverage() *Coverage {
	return &Coverage{
		RelationCounts:   make(map[RelationType]int64),
		ConstraintCounts: make(map[ConstraintType]int64),
		DescLengthMin:    -1,
	}
}

// Observe records one item's extraction results.
func (c *Coverage) Observe(descLen int, rels []Relation, cons []Constraint) {
	c.TotalItems++
	if len(rels) > 0 {
		c.ItemsWithRelations++
	}
	if len(cons) > 0 {
		c.ItemsWithConstraints++
	}
	if len(rels) > 0 && len(cons) > 0 {
		c.ItemsWithBoth++
	}
	for _, r := range rels {
		c.RelationCounts[r.Type]++
	}
	for _, con := range cons {
		c.ConstraintCounts[con.Type]++
	}
	n := int64(descLen)
	c.DescLengthSum += n
	if c.DescLengthMin < 0 || n < c.DescLengthMin {
		c.DescLengthMin = n
	}
	if n > c.DescLengthMax {
		c.DescLengthMax = n
	}
}

// Merge folds other into c. Used to combine per-worker partial aggregates.
func (c *Coverage) Merge(other *Coverage) {
	c.TotalItems += other.TotalItems
	c.ItemsWithRelations += other.ItemsWithRelations
	c.ItemsWithConstraints += other.ItemsWithConstraints
	c.ItemsWithBoth += other.ItemsWithBoth
	for t, n := range other.RelationCounts {
		c.RelationCounts[t] += n
	}
	for t, n := range other.ConstraintCounts {
		c.ConstraintCounts[t] += n
	}
	c.DescLengthSum += other.DescLengthSum
	if other.TotalItems > 0 {
		if c.DescLengthMin < 0 || (other.DescLengthMin >= 0 && other.DescLengthMin < c.DescLengthMin) {
			c.DescLengthMin = other.DescLengthMin
		}
		if other.DescLengthMax > c.DescLengthMax {
			c.DescLengthMax = other.DescLengthMax
		}
	}
}

// RelationsPct returns the percentage of items with at least one relation.
// Safe on an empty run.
func (c *Coverage) RelationsPct() float64 {
	if c.TotalItems == 0 {
		return 0
	}
	return float64(c.ItemsWithRelations) / float64(c.TotalItems) * 100
}

// ConstraintsPct returns the percentage of items with at least one constraint.
func (c *Coverage) ConstraintsPct() float64 {
	if c.TotalItems == 0 {
		return 0
	}
	return float64(c.ItemsWithConstraints) / float64(c.TotalItems) * 100
}

// BothPct returns the percentage of items with both fact kinds.
func (c *Coverage) BothPct() float64 {
	if c.TotalItems == 0 {
		return 0
	}
	return float64(c.ItemsWithBoth) / float64(c.TotalItems) * 100
}

// AvgDescLength returns the mean description length, 0 on an empty run.
func (c *Coverage) AvgDescLength() float64 {
	if c.TotalItems == 0 {
		return 0
	}
	return float64(c.DescLengthSum) / float64(c.TotalItems)
}

// MinDescLength returns the shortest observed description length, 0 when empty.
func (c *Coverage) MinDescLength() int64 {
	if c.DescLengthMin < 0 {
		return 0
	}
	return c.DescLengthMin
}
