package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/mbsfacts/internal/config"
	"github.com/gyeh/mbsfacts/internal/extract"
	"github.com/gyeh/mbsfacts/internal/model"
	"github.com/gyeh/mbsfacts/internal/schedule"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full load pipeline: preflight → parse → items → extract →
// facts → finalize. A failed run marks the load_runs row failed and stops;
// partial writes are left for the next run's truncate to clear.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-load)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			LoadRunID:     pf.LoadRunID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Parse
	log.Info().Msg("parsing schedule")
	parseStart := time.Now()
	items, err := schedule.ParseFile(cfg.FilePath)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.LoadRunID, "failed")
		return nil, &PipelineError{Phase: "parse", Err: err}
	}
	parseDur := time.Since(parseStart)
	log.Info().Int("items", len(items)).Str("duration", parseDur.String()).Msg("schedule parsed")

	// Phase 3: Stage items
	log.Info().Msg("staging items")
	stageResult, err := ReplaceItems(ctx, pool, log, items)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.LoadRunID, "failed")
		return nil, &PipelineError{Phase: "items", Err: err}
	}

	// Phase 4: Extract facts
	log.Info().Msg("extracting relations and constraints")
	ex := extract.New(extract.WithWindow(cfg.Window))
	extResult := ExtractFacts(log, ex, items, cfg.EffectiveWorkers())

	// Phase 5: Write facts
	log.Info().Msg("writing facts")
	factsResult, err := WriteFacts(ctx, pool, log, extResult.Relations, extResult.Constraints)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.LoadRunID, "failed")
		return nil, &PipelineError{Phase: "facts", Err: err}
	}

	// Phase 6: Finalize
	log.Info().Msg("finalizing")
	_, err = Finalize(ctx, pool, log, pf.LoadRunID,
		stageResult.ItemsLoaded, factsResult.RelationsLoaded, factsResult.ConstraintsLoaded)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.LoadRunID, "failed")
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	// Coverage is diagnostic only; log it after the load is safely complete.
	LogCoverage(log, extResult.Coverage)

	summary := &model.LoadSummary{
		FilePath:         pf.FilePath,
		FileSHA256:       pf.FileSHA256,
		LoadRunID:        pf.LoadRunID.String(),
		ItemsParsed:      stageResult.ItemsParsed,
		ItemsLoaded:      stageResult.ItemsLoaded,
		RelationsFound:   factsResult.RelationsLoaded,
		ConstraintsFound: factsResult.ConstraintsLoaded,
		Coverage:         *extResult.Coverage,
		DurationParse:    parseDur,
		DurationItems:    stageResult.Duration,
		DurationExtract:  extResult.Duration,
		DurationFacts:    factsResult.Duration,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("items", summary.ItemsLoaded).
		Int64("relations", summary.RelationsFound).
		Int64("constraints", summary.ConstraintsFound).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
