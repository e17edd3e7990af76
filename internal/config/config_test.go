package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Organizer.OrganizedDirName != "organized_files" {
		t.Fatalf("unexpected organized dir name: %q", cfg.Organizer.OrganizedDirName)
	}
	if cfg.Organizer.ReportFilename != "organization_report.txt" {
		t.Fatalf("unexpected report filename: %q", cfg.Organizer.ReportFilename)
	}
	if !cfg.Organizer.JournalEnabled {
		t.Fatal("expected journal enabled by default")
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected empty log dir (cwd), got %q", cfg.Paths.LogDir)
	}
	wantJournal := filepath.Join(tempHome, ".local", "share", "tidy", "journal.db")
	if cfg.Paths.JournalPath != wantJournal {
		t.Fatalf("unexpected journal path: got %q want %q", cfg.Paths.JournalPath, wantJournal)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
journal_path = "` + filepath.Join(dir, "journal.db") + `"

[organizer]
organized_dir_name = "  sorted  "
journal_enabled = false

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved existing path %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Organizer.OrganizedDirName != "sorted" {
		t.Fatalf("expected trimmed dir name, got %q", cfg.Organizer.OrganizedDirName)
	}
	if cfg.Organizer.JournalEnabled {
		t.Fatal("expected journal disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowered logging values, got %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "organized dir with separator",
			mutate: func(c *config.Config) { c.Organizer.OrganizedDirName = "a/b" },
			want:   "organized_dir_name",
		},
		{
			name:   "report filename with separator",
			mutate: func(c *config.Config) { c.Organizer.ReportFilename = `a\b` },
			want:   "report_filename",
		},
		{
			name:   "bad format",
			mutate: func(c *config.Config) { c.Logging.Format = "yaml" },
			want:   "logging.format",
		},
		{
			name:   "bad level",
			mutate: func(c *config.Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error %q", tc.want, err.Error())
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[organizer]") {
		t.Fatalf("sample missing organizer section: %q", data)
	}
	// The sample must itself load cleanly.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
