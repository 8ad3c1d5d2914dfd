package load

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/mbsfacts/internal/normalize"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the schedule file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// LoadRunID is a freshly generated UUIDv4 identifying this load run.
	LoadRunID uuid.UUID
	// AlreadyLoaded is true when the file's sha256 already has a completed
	// run and force mode is off, signaling the pipeline can skip this file.
	AlreadyLoaded bool
}

// Preflight hashes the file, checks for a prior completed run of the same
// content, and registers a new load_runs row.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	pf := &PreflightResult{
		FilePath:   filePath,
		FileSHA256: sha,
		FileSize:   stat.Size(),
		LoadRunID:  uuid.New(),
	}

	if !force {
		var count int64
		err := pool.QueryRow(ctx,
			"SELECT count(*) FROM mbs.load_runs WHERE source_sha256 = $1 AND status = 'complete'",
			sha,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("preflight lookup prior runs: %w", err)
		}
		pf.AlreadyLoaded = count > 0
	}

	if !pf.AlreadyLoaded {
		_, err = pool.Exec(ctx,
			"INSERT INTO mbs.load_runs (load_run_id, source_file, source_sha256, status) VALUES ($1, $2, $3, 'pending')",
			pf.LoadRunID, filepath.Base(filePath), sha,
		)
		if err != nil {
			return nil, fmt.Errorf("preflight register run: %w", err)
		}
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("bytes", stat.Size()).
		Bool("already_loaded", pf.AlreadyLoaded).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return pf, nil
}

// UpdateStatus updates the load_runs status for this run.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, loadRunID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx,
		"UPDATE mbs.load_runs SET status = $2 WHERE load_run_id = $1",
		loadRunID, status,
	)
	return err
}
