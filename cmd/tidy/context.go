package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"tidy/internal/config"
	"tidy/internal/journal"
	"tidy/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// runLogger opens the append-only log file for a mutating command. Console
// echo is suppressed; commands print their own user-facing summaries.
func (c *commandContext) runLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Dir:     cfg.Paths.LogDir,
		Console: io.Discard,
	})
}

// openJournal returns the configured journal store, or nil when journaling
// is disabled.
func (c *commandContext) openJournal() (*journal.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Organizer.JournalEnabled {
		return nil, nil
	}
	return journal.Open(cfg.Paths.JournalPath)
}
