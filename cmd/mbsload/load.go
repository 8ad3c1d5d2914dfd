package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mbsfacts/internal/db"
	"github.com/gyeh/mbsfacts/internal/exitcode"
	"github.com/gyeh/mbsfacts/internal/load"
	"github.com/gyeh/mbsfacts/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load an MBS schedule file into the database",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to MBS XML or CSV file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-load even if file SHA already has a completed run")
	f.IntVar(&cfg.Window, "window", 0, "Relation proximity window in characters (default 120)")
	f.IntVar(&cfg.Workers, "workers", 0, "Extract-phase workers (default: CPU count)")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*load.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight", "parse":
				os.Exit(exitcode.ValidationError)
			case "items", "facts":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.ExtractError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.ExtractError)
	}

	fmt.Printf("Load complete: %d items, %d relations, %d constraints (%.1fs)\n",
		summary.ItemsLoaded, summary.RelationsFound, summary.ConstraintsFound,
		summary.DurationTotal.Seconds())
	fmt.Printf("Coverage: relations %.1f%%, constraints %.1f%%, both %.1f%%\n",
		summary.Coverage.RelationsPct(), summary.Coverage.ConstraintsPct(), summary.Coverage.BothPct())
	return nil
}
