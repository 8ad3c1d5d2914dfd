package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Finalize records the run's counts, marks it complete, and refreshes
// planner statistics on the fact tables.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, loadRunID uuid.UUID, items, relations, constraints int64) (time.Duration, error) {
	start := time.Now()

	_, err := pool.Exec(ctx,
		`UPDATE mbs.load_runs
		 SET status = 'complete', items_loaded = $2, relations_loaded = $3,
		     constraints_loaded = $4, finished_at = now()
		 WHERE load_run_id = $1`,
		loadRunID, items, relations, constraints,
	)
	if err != nil {
		return 0, fmt.Errorf("finalize run record: %w", err)
	}

	for _, tbl := range []string{"mbs.items", "mbs.relations", "mbs.constraints"} {
		if _, err := pool.Exec(ctx, "ANALYZE "+tbl); err != nil {
			return 0, fmt.Errorf("analyze %s: %w", tbl, err)
		}
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
