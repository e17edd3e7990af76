// Package report summarizes the organized directory state as a fixed-format
// text block and writes it into the organized root.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tidy/internal/category"
	"tidy/internal/faults"
	"tidy/internal/logging"
)

// DefaultFilename is the report name used when none is configured.
const DefaultFilename = "organization_report.txt"

const title = "File Organization Report"

// Collect counts the regular files directly inside each category folder of
// root, misc included. A missing category folder counts as zero.
func Collect(root string, table *category.Table) (map[string]int, error) {
	if table == nil {
		table = category.Default()
	}
	counts := make(map[string]int, len(table.FolderNames()))
	for _, name := range table.FolderNames() {
		entries, err := os.ReadDir(filepath.Join(root, name))
		if err != nil {
			if os.IsNotExist(err) {
				counts[name] = 0
				continue
			}
			return nil, fmt.Errorf("list category %s: %w", name, err)
		}
		files := 0
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files++
			}
		}
		counts[name] = files
	}
	return counts, nil
}

// Render produces the report text: a title, a separator line, then one
// "Category: N files" line per category in table order with the misc bucket
// last.
func Render(table *category.Table, counts map[string]int) string {
	if table == nil {
		table = category.Default()
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", 25))
	for _, name := range table.FolderNames() {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("%s: %d files", table.DisplayName(name), counts[name]))
	}
	return b.String()
}

// Write collects counts under root, renders the report, and writes it to
// root/filename, overwriting any prior report. It returns the report path.
func Write(root, filename string, table *category.Table, logger *slog.Logger) (string, error) {
	if strings.TrimSpace(filename) == "" {
		filename = DefaultFilename
	}
	counts, err := Collect(root, table)
	if err != nil {
		return "", faults.Wrap(faults.ErrReportWrite, "reporting", "collect counts", root, err)
	}
	text := Render(table, counts)
	path := filepath.Join(root, filename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", faults.Wrap(faults.ErrReportWrite, "reporting", "write report", path, err)
	}
	if logger != nil {
		logger.Info("report generated successfully", logging.String("path", path))
	}
	return path, nil
}
