package config

const (
	defaultJournalPath      = "~/.local/share/tidy/journal.db"
	defaultOrganizedDirName = "organized_files"
	defaultReportFilename   = "organization_report.txt"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			JournalPath: defaultJournalPath,
		},
		Organizer: Organizer{
			OrganizedDirName: defaultOrganizedDirName,
			ReportFilename:   defaultReportFilename,
			JournalEnabled:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
