package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("expected exists=false for missing file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Scoring.HighThreshold != defaultHighThreshold {
		t.Errorf("HighThreshold = %d, want default %d", cfg.Scoring.HighThreshold, defaultHighThreshold)
	}
	if cfg.Matching.EpisodeLookupLimit != defaultEpisodeLookupLimit {
		t.Errorf("EpisodeLookupLimit = %d, want default %d", cfg.Matching.EpisodeLookupLimit, defaultEpisodeLookupLimit)
	}
}

func TestLoadOverridesAndExpands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"

[scoring]
high_threshold = 85

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Scoring.HighThreshold != 85 {
		t.Errorf("HighThreshold = %d, want 85", cfg.Scoring.HighThreshold)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "catalog.db") {
		t.Errorf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	cfg := Default()
	cfg.Scoring.MediumThreshold = cfg.Scoring.HighThreshold
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for equal thresholds")
	}
	if !strings.Contains(err.Error(), "strictly decreasing") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if _, err := WriteSample(path); err == nil {
		t.Fatal("expected error writing over existing config")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, p := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("directory %q not created (err=%v)", p, err)
		}
	}
}
