package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganizer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganizer() error {
	if strings.ContainsAny(c.Organizer.OrganizedDirName, `/\`) {
		return fmt.Errorf("organizer.organized_dir_name must be a bare directory name, got %q", c.Organizer.OrganizedDirName)
	}
	if strings.ContainsAny(c.Organizer.ReportFilename, `/\`) {
		return fmt.Errorf("organizer.report_filename must be a bare file name, got %q", c.Organizer.ReportFilename)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
