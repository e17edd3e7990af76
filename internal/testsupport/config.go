// Package testsupport provides shared fixtures for package tests: configs
// seeded with per-test temp directories and a ready-to-use journal store.
package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
	"tidy/internal/journal"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test. It
// defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.JournalPath = filepath.Join(base, "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithJournalDisabled turns off journal recording on the test config.
func WithJournalDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Organizer.JournalEnabled = false
	}
}

// MustOpenJournal opens the journal store backing the test config and closes
// it when the test finishes.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(cfg.Paths.JournalPath)
	if err != nil {
		t.Fatalf("open journal store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
