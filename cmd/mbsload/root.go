package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mbsfacts/internal/config"
)

var cfg config.Config

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mbsload",
	Short: "MBS schedule → Postgres loader with fact extraction",
	Long:  "Reads MBS schedule XML/CSV files, extracts relation and constraint facts from item descriptions, and bulk-loads everything into Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("MBS_DB_URL"), "Postgres connection string (or set MBS_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config file (window, workers)")
}

// loadConfigFile merges the optional YAML config before a subcommand runs.
func loadConfigFile() error {
	if cfgFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfgFile)
}
