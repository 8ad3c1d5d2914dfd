package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mbsfacts/internal/exitcode"
	"github.com/gyeh/mbsfacts/internal/extract"
	"github.com/gyeh/mbsfacts/internal/load"
	"github.com/gyeh/mbsfacts/internal/logging"
	"github.com/gyeh/mbsfacts/internal/model"
	"github.com/gyeh/mbsfacts/internal/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Parse and extract without touching the database",
	Long: `Plan runs the parse and extraction phases against a schedule file and
prints the coverage report. Nothing is written; no database is required.`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to MBS XML or CSV file (required)")
	f.IntVar(&cfg.Window, "window", 0, "Relation proximity window in characters (default 120)")
	f.IntVar(&cfg.Workers, "workers", 0, "Extract-phase workers (default: CPU count)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	items, err := schedule.ParseFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.FilePath).Msg("parse failed")
		os.Exit(exitcode.ValidationError)
	}
	log.Info().Int("items", len(items)).Str("file", cfg.FilePath).Msg("schedule parsed")

	ex := extract.New(extract.WithWindow(cfg.Window))
	res := load.ExtractFacts(log, ex, items, cfg.EffectiveWorkers())
	load.LogCoverage(log, res.Coverage)

	cov := res.Coverage
	fmt.Printf("Plan for %s\n", cfg.FilePath)
	fmt.Printf("  items:       %d\n", len(items))
	fmt.Printf("  relations:   %d (%.1f%% of items)\n", len(res.Relations), cov.RelationsPct())
	fmt.Printf("  constraints: %d (%.1f%% of items)\n", len(res.Constraints), cov.ConstraintsPct())
	fmt.Printf("  both kinds:  %.1f%% of items\n", cov.BothPct())
	for _, rt := range model.AllRelationTypes {
		if n := cov.RelationCounts[rt]; n > 0 {
			fmt.Printf("  relation %-22s %d\n", string(rt)+":", n)
		}
	}
	for _, ct := range model.AllConstraintTypes {
		if n := cov.ConstraintCounts[ct]; n > 0 {
			fmt.Printf("  constraint %-22s %d\n", string(ct)+":", n)
		}
	}
	return nil
}
