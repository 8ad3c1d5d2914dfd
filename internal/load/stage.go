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

const copyBatchSize = 1024

// StageResult holds metrics from the item staging phase.
type StageResult struct {
	ItemsParsed  int64
	ItemsLoaded  int64
	ItemsSkipped int64
	Duration     time.Duration
}

// ReplaceItems clears any previous dataset and COPY-loads the parsed items.
// Facts are always re-derived from scratch, so the truncate covers all three
// tables. Duplicate item numbers in the source keep their first occurrence.
func ReplaceItems(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, items []model.Item) (*StageResult, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx,
		"TRUNCATE mbs.constraints, mbs.relations, mbs.items",
	); err != nil {
		return nil, fmt.Errorf("stage truncate: %w", err)
	}

	ch := make(chan *model.Item, copyBatchSize)
	var skipped int64

	// Producer goroutine: dedup by item number, push to channel.
	go func() {
		defer close(ch)
		seen := make(map[string]bool, len(items))
		for i := range items {
			if seen[items[i].ItemNum] {
				skipped++
				continue
			}
			seen[items[i].ItemNum] = true
			select {
			case ch <- &items[i]:
			case <-ctx.Done():
				return
			}
		}
	}()

	source := db.NewChannelSource(ch)
	loaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"mbs", "items"},
		model.ItemColumns(),
		source,
	)
	if err != nil {
		return nil, fmt.Errorf("stage copy items: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int("items_parsed", len(items)).
		Int64("items_loaded", loaded).
		Int64("items_skipped", skipped).
		Str("duration", dur.String()).
		Msg("items staged")

	return &StageResult{
		ItemsParsed:  int64(len(items)),
		ItemsLoaded:  loaded,
		ItemsSkipped: skipped,
		Duration:     dur,
	}, nil
}
