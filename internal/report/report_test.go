package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/category"
	"tidy/internal/faults"
	"tidy/internal/layout"
	"tidy/internal/logging"
	"tidy/internal/report"
)

func seedLayout(t *testing.T) (string, *category.Table) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "organized_files")
	table := category.Default()
	if err := layout.Ensure(root, table, logging.NewNop()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	return root, table
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCollectCountsRegularFilesOnly(t *testing.T) {
	root, table := seedLayout(t)
	writeFile(t, filepath.Join(root, "documents", "a.txt"))
	writeFile(t, filepath.Join(root, "documents", "b.pdf"))
	writeFile(t, filepath.Join(root, "misc", "c.unknown"))
	if err := os.MkdirAll(filepath.Join(root, "images", "nested"), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	counts, err := report.Collect(root, table)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if counts["documents"] != 2 {
		t.Fatalf("documents count = %d, want 2", counts["documents"])
	}
	if counts["misc"] != 1 {
		t.Fatalf("misc count = %d, want 1", counts["misc"])
	}
	if counts["images"] != 0 {
		t.Fatalf("images count = %d, want 0 (directories are not files)", counts["images"])
	}
}

func TestCollectTreatsMissingFolderAsZero(t *testing.T) {
	root := t.TempDir()
	counts, err := report.Collect(root, category.Default())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for name, count := range counts {
		if count != 0 {
			t.Fatalf("expected 0 for %s, got %d", name, count)
		}
	}
}

func TestRenderFixedFormat(t *testing.T) {
	table := category.Default()
	counts := map[string]int{"documents": 1, "images": 1, "misc": 1}
	got := report.Render(table, counts)

	want := strings.Join([]string{
		"File Organization Report",
		"=========================",
		"Documents: 1 files",
		"Images: 1 files",
		"Audio: 0 files",
		"Videos: 0 files",
		"Archives: 0 files",
		"Code: 0 files",
		"Miscellaneous: 1 files",
	}, "\n")
	if got != want {
		t.Fatalf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOverwritesPriorReport(t *testing.T) {
	root, table := seedLayout(t)

	path, err := report.Write(root, "", table, logging.NewNop())
	if err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if filepath.Base(path) != report.DefaultFilename {
		t.Fatalf("unexpected report path %q", path)
	}

	writeFile(t, filepath.Join(root, "audio", "song.mp3"))
	if _, err := report.Write(root, "", table, logging.NewNop()); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Audio: 1 files") {
		t.Fatalf("expected refreshed audio count, got:\n%s", data)
	}
}

func TestWriteFailureIsReportWriteError(t *testing.T) {
	root, table := seedLayout(t)
	// A directory at the report path forces the write to fail.
	if err := os.MkdirAll(filepath.Join(root, report.DefaultFilename), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := report.Write(root, "", table, logging.NewNop())
	if err == nil {
		t.Fatal("expected write failure")
	}
	if !errors.Is(err, faults.ErrReportWrite) {
		t.Fatalf("expected report write marker, got %v", err)
	}
}
