// Package layout provisions the organized directory tree: the organized root
// plus one subfolder per category and the misc fallback.
package layout

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tidy/internal/category"
	"tidy/internal/faults"
	"tidy/internal/logging"
)

// Ensure creates root and one subdirectory per category folder, misc
// included. Idempotent: existing directories are left untouched and never
// truncated. A path that exists but is not a directory is a fatal
// directory-creation failure.
func Ensure(root string, table *category.Table, logger *slog.Logger) error {
	if table == nil {
		table = category.Default()
	}
	if err := ensureDir(root); err != nil {
		return faults.Wrap(faults.ErrDirectoryCreate, "provisioning", "create organized root", root, err)
	}
	for _, name := range table.FolderNames() {
		dir := filepath.Join(root, name)
		if err := ensureDir(dir); err != nil {
			return faults.Wrap(faults.ErrDirectoryCreate, "provisioning", "create category directory", dir, err)
		}
	}
	if logger != nil {
		logger.Info("directory structure created successfully", logging.String("root", root))
	}
	return nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0o755)
}
