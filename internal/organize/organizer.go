package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tidy/internal/category"
	"tidy/internal/config"
	"tidy/internal/faults"
	"tidy/internal/fileutil"
	"tidy/internal/journal"
	"tidy/internal/layout"
	"tidy/internal/logging"
	"tidy/internal/report"
)

// LockFileName is the per-source-directory lock taken while organizing so
// two runs never race on the same directory. The scanner skips it.
const LockFileName = ".tidy.lock"

// Journal records runs and moves. *journal.Store satisfies it; tests inject
// stubs.
type Journal interface {
	BeginRun(ctx context.Context, sourceDir string) (*journal.Run, error)
	RecordMove(ctx context.Context, runID, sourceName, categoryName, destination string) error
	FinishRun(ctx context.Context, runID string, organized, total int) error
}

// Result summarizes a completed run.
type Result struct {
	// Organized counts files actually moved; Total counts every qualifying
	// file discovered. Organized <= Total always; they are equal after an
	// error-free run.
	Organized int
	Total     int
	// Root is the organized directory the run produced.
	Root string
	// ReportPath is empty when report writing was skipped.
	ReportPath string
	RunID      string
}

// Organizer runs the scan-classify-move pipeline against one source
// directory. It holds no state across runs.
type Organizer struct {
	cfg    *config.Config
	table  *category.Table
	logger *slog.Logger
	log    Journal

	// DryRun classifies and reports what would move without touching the
	// filesystem or the journal.
	DryRun bool
	// WriteReport controls whether the summary report is written after the
	// moves complete.
	WriteReport bool
	// OnFile, when set, observes each qualifying file after it is handled
	// (moved, or classified in a dry run).
	OnFile func(name, categoryName string)

	now func() time.Time
}

// New constructs an organizer with an injected category table, logger, and
// journal. A nil journal disables run recording; a nil table uses the
// built-in one.
func New(cfg *config.Config, table *category.Table, logger *slog.Logger, log Journal) *Organizer {
	if table == nil {
		table = category.Default()
	}
	return &Organizer{
		cfg:         cfg,
		table:       table,
		logger:      logging.NewComponentLogger(logger, "organizer"),
		log:         log,
		WriteReport: true,
		now:         time.Now,
	}
}

// Run organizes sourceDir and returns move counts. Any per-file error aborts
// the whole run; files already moved stay moved and no report is written.
func (o *Organizer) Run(ctx context.Context, sourceDir string) (Result, error) {
	var result Result

	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return result, faults.Wrap(faults.ErrInvalidSource, "organizing", "validate source", sourceDir+" does not exist", nil)
		}
		return result, faults.Wrap(faults.ErrInvalidSource, "organizing", "validate source", sourceDir, err)
	}
	if !info.IsDir() {
		return result, faults.Wrap(faults.ErrInvalidSource, "organizing", "validate source", sourceDir+" is not a directory", nil)
	}

	root := filepath.Join(sourceDir, o.cfg.Organizer.OrganizedDirName)
	result.Root = root

	if !o.DryRun {
		if err := layout.Ensure(root, o.table, o.logger); err != nil {
			o.logger.Error("error creating directories", logging.Error(err))
			return result, err
		}
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return result, faults.Wrap(faults.ErrInvalidSource, "organizing", "list source directory", sourceDir, err)
	}

	var run *journal.Run
	if o.log != nil && !o.DryRun {
		run, err = o.log.BeginRun(ctx, sourceDir)
		if err != nil {
			o.logger.Warn("journal unavailable for this run", logging.Error(err))
			run = nil
		} else {
			result.RunID = run.ID
		}
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if skipName(name) {
			continue
		}
		result.Total++

		categoryName := o.table.Classify(filepath.Ext(name))
		if o.DryRun {
			if o.OnFile != nil {
				o.OnFile(name, categoryName)
			}
			continue
		}

		destination, err := o.destinationFor(filepath.Join(root, categoryName), name)
		if err != nil {
			o.logger.Error("error organizing files", logging.Error(err))
			return result, err
		}
		if err := fileutil.MoveFile(filepath.Join(sourceDir, name), destination); err != nil {
			wrapped := faults.Wrap(faults.ErrFileMove, "organizing", "move file", name, err)
			o.logger.Error("error organizing files", logging.Error(wrapped))
			return result, wrapped
		}
		result.Organized++
		o.logger.Info(fmt.Sprintf("moved %q to %s folder", name, categoryName))

		if run != nil {
			if err := o.log.RecordMove(ctx, run.ID, name, categoryName, destination); err != nil {
				o.logger.Warn("failed to journal move", logging.String("name", name), logging.Error(err))
			}
		}
		if o.OnFile != nil {
			o.OnFile(name, categoryName)
		}
	}

	o.logger.Info(fmt.Sprintf("organization complete, processed %d of %d files", result.Organized, result.Total))

	if run != nil {
		if err := o.log.FinishRun(ctx, run.ID, result.Organized, result.Total); err != nil {
			o.logger.Warn("failed to finalize journal run", logging.Error(err))
		}
	}

	if o.WriteReport && !o.DryRun {
		path, err := report.Write(root, o.cfg.Organizer.ReportFilename, o.table, o.logger)
		if err != nil {
			o.logger.Error("error generating report", logging.Error(err))
			return result, err
		}
		result.ReportPath = path
	}

	return result, nil
}

// skipName filters the tool's own artifacts out of a scan so a run never
// moves its log or the source-directory lock.
func skipName(name string) bool {
	return name == logging.LogFileName || name == LockFileName
}

// CountCandidates returns how many files a run over sourceDir would
// consider. Callers use it to size progress reporting before moving anything.
func CountCandidates(sourceDir string) (int, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() && !skipName(entry.Name()) {
			count++
		}
	}
	return count, nil
}
