package layout_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/category"
	"tidy/internal/faults"
	"tidy/internal/layout"
	"tidy/internal/logging"
)

func TestEnsureCreatesAllCategoryFolders(t *testing.T) {
	root := filepath.Join(t.TempDir(), "organized_files")
	table := category.Default()

	if err := layout.Ensure(root, table, logging.NewNop()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	for _, name := range table.FolderNames() {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", name)
		}
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "organized_files")
	table := category.Default()

	if err := layout.Ensure(root, table, logging.NewNop()); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}

	// Seed a file so a second pass provably does not truncate anything.
	keep := filepath.Join(root, "documents", "keep.txt")
	if err := os.WriteFile(keep, []byte("keep"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := layout.Ensure(root, table, logging.NewNop()); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}

	data, err := os.ReadFile(keep)
	if err != nil {
		t.Fatalf("read seeded file: %v", err)
	}
	if string(data) != "keep" {
		t.Fatalf("seeded file content changed: %q", data)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != len(table.FolderNames()) {
		t.Fatalf("expected %d entries, got %d", len(table.FolderNames()), len(entries))
	}
}

func TestEnsureFailsWhenPathIsAFile(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "organized_files")
	if err := os.WriteFile(root, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	err := layout.Ensure(root, category.Default(), logging.NewNop())
	if err == nil {
		t.Fatal("expected error for non-directory root")
	}
	if !errors.Is(err, faults.ErrDirectoryCreate) {
		t.Fatalf("expected directory creation marker, got %v", err)
	}
}
