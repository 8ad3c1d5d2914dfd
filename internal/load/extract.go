package load

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/mbsfacts/internal/extract"
	"github.com/gyeh/mbsfacts/internal/model"
)

// ExtractResult holds the two flat fact batches plus the diagnostic coverage
// aggregate from one scan over the dataset.
type ExtractResult struct {
	Relations   []model.Relation
	Constraints []model.Constraint
	Coverage    *model.Coverage
	Duration    time.Duration
}

// ExtractFacts runs both extractors over every item. Items are independent,
// so the scan fans out across workers; each worker keeps a private coverage
// aggregate, merged at the end instead of locking per increment. Results are
// collected per item index, so the flattened batches are deterministic
// regardless of worker scheduling.
func ExtractFacts(log zerolog.Logger, ex *extract.Extractor, items []model.Item, workers int) *ExtractResult {
	start := time.Now()
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) && len(items) > 0 {
		workers = len(items)
	}

	relsByItem := make([][]model.Relation, len(items))
	consByItem := make([][]model.Constraint, len(items))
	partials := make([]*model.Coverage, workers)

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		cov := model.NewCoverage()
		partials[w] = cov
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				it := &items[i]
				desc := it.DescriptionText()
				rels := ex.Relations(it.ItemNum, desc, it.DerivedFeeText())
				cons := ex.Constraints(it.ItemNum, desc)
				relsByItem[i] = rels
				consByItem[i] = cons
				cov.Observe(len(desc), rels, cons)
			}
		}()
	}
	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	coverage := model.NewCoverage()
	for _, p := range partials {
		coverage.Merge(p)
	}

	var relations []model.Relation
	var constraints []model.Constraint
	for i := range items {
		relations = append(relations, relsByItem[i]...)
		constraints = append(constraints, consByItem[i]...)
	}

	dur := time.Since(start)
	log.Info().
		Int("items", len(items)).
		Int("workers", workers).
		Int("relations", len(relations)).
		Int("constraints", len(constraints)).
		Str("duration", dur.String()).
		Msg("extraction complete")

	return &ExtractResult{
		Relations:   relations,
		Constraints: constraints,
		Coverage:    coverage,
		Duration:    dur,
	}
}

// LogCoverage emits the diagnostic coverage report. It is informational
// only and must never fail a load, so everything here guards empty inputs.
func LogCoverage(log zerolog.Logger, cov *model.Coverage) {
	log.Info().
		Int64("total_items", cov.TotalItems).
		Int64("with_relations", cov.ItemsWithRelations).
		Int64("with_constraints", cov.ItemsWithConstraints).
		Int64("with_both", cov.ItemsWithBoth).
		Msg("extraction coverage")

	log.Info().
		Float64("relations_pct", cov.RelationsPct()).
		Float64("constraints_pct", cov.ConstraintsPct()).
		Float64("both_pct", cov.BothPct()).
		Msg("coverage percentages")

	log.Info().
		Float64("avg_length", cov.AvgDescLength()).
		Int64("min_length", cov.MinDescLength()).
		Int64("max_length", cov.DescLengthMax).
		Msg("description statistics")

	for _, rt := range model.AllRelationTypes {
		if n := cov.RelationCounts[rt]; n > 0 {
			log.Info().Str("relation_type", string(rt)).Int64("count", n).Msg("relation pattern")
		}
	}
	for _, ct := range model.AllConstraintTypes {
		if n := cov.ConstraintCounts[ct]; n > 0 {
			log.Info().Str("constraint_type", string(ct)).Int64("count", n).Msg("constraint pattern")
		}
	}
}
