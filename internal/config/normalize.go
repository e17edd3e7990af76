package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganizer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	// An empty log_dir is meaningful (current working directory) and stays empty.
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	} else {
		c.Paths.LogDir = ""
	}
	if strings.TrimSpace(c.Paths.JournalPath) == "" {
		c.Paths.JournalPath = defaultJournalPath
	}
	if c.Paths.JournalPath, err = expandPath(c.Paths.JournalPath); err != nil {
		return fmt.Errorf("paths.journal_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganizer() {
	c.Organizer.OrganizedDirName = strings.TrimSpace(c.Organizer.OrganizedDirName)
	if c.Organizer.OrganizedDirName == "" {
		c.Organizer.OrganizedDirName = defaultOrganizedDirName
	}
	c.Organizer.ReportFilename = strings.TrimSpace(c.Organizer.ReportFilename)
	if c.Organizer.ReportFilename == "" {
		c.Organizer.ReportFilename = defaultReportFilename
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
