package testsupport

import (
	"path/filepath"
	"testing"

	"pilgrim/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithEpisodeLookupLimit overrides the matcher's episode lookup cap.
func WithEpisodeLookupLimit(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.EpisodeLookupLimit = limit
	}
}
