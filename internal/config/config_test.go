package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("window: 80\nworkers: 4\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Window != 80 {
		t.Errorf("Window = %d, want 80", c.Window)
	}
	if c.Workers != 4 {
		t.Errorf("Workers = %d, want 4", c.Workers)
	}
}

func TestLoadFromFile_ZeroValuesDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("window: 0\n"), 0644)

	c := Config{Window: 200, Workers: 2}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Window != 200 || c.Workers != 2 {
		t.Errorf("flag values overridden: window=%d workers=%d", c.Window, c.Workers)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("window: [not an int\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for bad yaml")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mbs.xml")
	os.WriteFile(file, []byte("<MBS_XML/>"), 0644)

	c := Config{FilePath: file}
	if err := c.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	c = Config{}
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing file path")
	}

	c = Config{FilePath: filepath.Join(dir, "missing.xml")}
	if err := c.Validate(); err == nil {
		t.Error("expected error for inaccessible file")
	}

	c = Config{FilePath: file, Window: -1}
	if err := c.Validate(); err == nil {
		t.Error("expected error for negative window")
	}

	c = Config{FilePath: file, Workers: -1}
	if err := c.Validate(); err == nil {
		t.Error("expected error for negative workers")
	}
}

func TestValidateWithDSN(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mbs.xml")
	os.WriteFile(file, []byte("<MBS_XML/>"), 0644)

	c := Config{FilePath: file}
	if err := c.ValidateWithDSN(); err == nil {
		t.Error("expected error for missing DSN")
	}

	c.DSN = "postgres://localhost/mbs"
	if err := c.ValidateWithDSN(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestEffectiveWorkers(t *testing.T) {
	c := Config{Workers: 3}
	if got := c.EffectiveWorkers(); got != 3 {
		t.Errorf("EffectiveWorkers = %d, want 3", got)
	}
	c.Workers = 0
	if got := c.EffectiveWorkers(); got < 1 {
		t.Errorf("EffectiveWorkers = %d, want >= 1", got)
	}
}
