package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for an mbsload run.
type Config struct {
	DSN       string
	FilePath  string
	LogFormat string // "text" or "json"
	Force     bool   // re-load even when the file SHA already has a completed run

	// Window is the character radius scanned around a relation phrase when
	// pairing it with nearby item numbers.
	Window int `yaml:"window"`
	// Workers is the extract-phase fan-out. Items are independent, so the
	// scan parallelizes freely; 0 means one worker per CPU.
	Workers int `yaml:"workers"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Window  int `yaml:"window"`
	Workers int `yaml:"workers"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Window != 0 {
		c.Window = yc.Window
	}
	if yc.Workers != 0 {
		c.Workers = yc.Workers
	}
	return nil
}

// EffectiveWorkers resolves the worker count, defaulting to the CPU count.
func (c *Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.Window < 0 {
		return fmt.Errorf("window must be positive, got %d", c.Window)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or MBS_DB_URL is required")
	}
	return nil
}
