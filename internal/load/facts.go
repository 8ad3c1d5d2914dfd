package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/mbsfacts/internal/db"
	"github.com/gyeh/mbsfacts/internal/model"
)

// FactsResult holds metrics from the fact-write phase.
type FactsResult struct {
	RelationsLoaded   int64
	ConstraintsLoaded int64
	Duration          time.Duration
}

// WriteFacts bulk-inserts the two flat batches, one COPY per fact type.
func WriteFacts(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, rels []model.Relation, cons []model.Constraint) (*FactsResult, error) {
	start := time.Now()

	relRows := make([]*model.Relation, len(rels))
	for i := range rels {
		relRows[i] = &rels[i]
	}
	relsLoaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"mbs", "relations"},
		model.RelationColumns(),
		db.SliceSource(relRows),
	)
	if err != nil {
		return nil, fmt.Errorf("copy relations: %w", err)
	}

	conRows := make([]*model.Constraint, len(cons))
	for i := range cons {
		conRows[i] = &cons[i]
	}
	consLoaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"mbs", "constraints"},
		model.ConstraintColumns(),
		db.SliceSource(conRows),
	)
	if err != nil {
		return nil, fmt.Errorf("copy constraints: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("relations", relsLoaded).
		Int64("constraints", consLoaded).
		Str("duration", dur.String()).
		Msg("facts written")

	return &FactsResult{
		RelationsLoaded:   relsLoaded,
		ConstraintsLoaded: consLoaded,
		Duration:          dur,
	}, nil
}
