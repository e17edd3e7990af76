package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()

	content := strings.Join([]string{
		"[paths]",
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
		`journal_path = "` + filepath.Join(base, "journal.db") + `"`,
		"",
	}, "\n")
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedSource(t *testing.T) string {
	t.Helper()

	source := t.TempDir()
	for _, name := range []string{"a.txt", "b.jpg", "c.unknown"} {
		if err := os.WriteFile(filepath.Join(source, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(source, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}
	return source
}

func TestOrganizeCommandEndToEnd(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := seedSource(t)

	out, err := runCLI(t, "", "organize", source, "--config", configPath)
	if err != nil {
		t.Fatalf("organize: %v\noutput: %s", err, out)
	}

	if !strings.Contains(out, "Organization complete!") {
		t.Fatalf("missing completion banner: %s", out)
	}
	if !strings.Contains(out, "Processed 3 of 3 files") {
		t.Fatalf("missing processed summary: %s", out)
	}

	root := filepath.Join(source, "organized_files")
	for _, rel := range []string{
		filepath.Join("documents", "a.txt"),
		filepath.Join("images", "b.jpg"),
		filepath.Join("misc", "c.unknown"),
		"organization_report.txt",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Fatalf("expected %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(source, "sub")); err != nil {
		t.Fatalf("sub/ should be untouched: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "logs", "tidy.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestOrganizeCommandReadsPromptedPath(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := seedSource(t)

	out, err := runCLI(t, source+"\n", "organize", "--config", configPath)
	if err != nil {
		t.Fatalf("organize via prompt: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Enter the directory path to organize:") {
		t.Fatalf("missing prompt: %s", out)
	}
	if _, err := os.Stat(filepath.Join(source, "organized_files", "documents", "a.txt")); err != nil {
		t.Fatalf("expected organized file: %v", err)
	}
}

func TestOrganizeCommandDryRun(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := seedSource(t)

	out, err := runCLI(t, "", "organize", source, "--dry-run", "--config", configPath)
	if err != nil {
		t.Fatalf("dry run: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "a.txt -> documents") {
		t.Fatalf("missing dry-run line: %s", out)
	}
	if _, err := os.Stat(filepath.Join(source, "organized_files")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create organized root, stat err=%v", err)
	}
}

func TestOrganizeCommandRejectsMissingDirectory(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	_, err := runCLI(t, "", "organize", filepath.Join(base, "nope"), "--config", configPath)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportCommandRegenerates(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := seedSource(t)

	if _, err := runCLI(t, "", "organize", source, "--config", configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, err := runCLI(t, "", "report", source, "--config", configPath)
	if err != nil {
		t.Fatalf("report: %v\noutput: %s", err, out)
	}
	for _, line := range []string{"File Organization Report", "Documents: 1 files", "Miscellaneous: 1 files"} {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in report output: %s", line, out)
		}
	}
}

func TestReportCommandRequiresOrganizedRoot(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	_, err := runCLI(t, "", "report", t.TempDir(), "--config", configPath)
	if err == nil {
		t.Fatal("expected error without organized root")
	}
}

func TestCategoriesCommandListsTable(t *testing.T) {
	out, err := runCLI(t, "", "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, fragment := range []string{"Documents", ".pdf", "Miscellaneous", "(anything unmatched)"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("missing %q in output: %s", fragment, out)
		}
	}
}

func TestHistoryCommandShowsRuns(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := seedSource(t)

	if _, err := runCLI(t, "", "organize", source, "--config", configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, err := runCLI(t, "", "history", "--config", configPath)
	if err != nil {
		t.Fatalf("history: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, source) {
		t.Fatalf("expected source dir in history: %s", out)
	}
	if !strings.Contains(out, "3/3") {
		t.Fatalf("expected processed counts in history: %s", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\noutput: %s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[organizer]") {
		t.Fatalf("sample missing organizer section: %s", data)
	}

	if _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
