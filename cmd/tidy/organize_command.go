package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tidy/internal/category"
	"tidy/internal/logging"
	"tidy/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var noReport bool

	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Move a directory's files into category folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSourceDir(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			info, err := os.Stat(source)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("source directory does not exist: %s", source)
				}
				return fmt.Errorf("inspect source directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", source)
			}

			// One run per source directory at a time.
			lock := flock.New(filepath.Join(source, organize.LockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another tidy run is already organizing %s", source)
			}
			defer func() {
				_ = lock.Unlock()
				_ = os.Remove(lock.Path())
			}()

			logger, err := ctx.runLogger()
			if err != nil {
				return err
			}

			var journalSink organize.Journal
			if !dryRun {
				store, err := ctx.openJournal()
				if err != nil {
					return err
				}
				if store != nil {
					defer store.Close()
					journalSink = store
				}
			}

			org := organize.New(cfg, category.Default(), logger, journalSink)
			org.DryRun = dryRun
			org.WriteReport = !noReport

			out := cmd.OutOrStdout()
			if dryRun {
				org.OnFile = func(name, categoryName string) {
					fmt.Fprintf(out, "%s -> %s\n", name, categoryName)
				}
			} else if file, ok := out.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
				total, err := organize.CountCandidates(source)
				if err == nil && total > 0 {
					bar := progressbar.Default(int64(total), "organizing")
					org.OnFile = func(string, string) {
						_ = bar.Add(1)
					}
					defer func() {
						_ = bar.Finish()
					}()
				}
			}

			result, err := org.Run(cmd.Context(), source)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(out, "\nDry run: %d of %d files would be organized\n", result.Total, result.Total)
				return nil
			}

			fmt.Fprintln(out, "\nOrganization complete!")
			fmt.Fprintf(out, "Processed %d of %d files\n", result.Organized, result.Total)
			if result.ReportPath != "" {
				fmt.Fprintf(out, "Check %q in the %s directory for details\n", filepath.Base(result.ReportPath), cfg.Organizer.OrganizedDirName)
			}
			fmt.Fprintf(out, "Check %q for detailed operation logs\n", logging.LogFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify files and print destinations without moving anything")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing the summary report")
	return cmd
}

// resolveSourceDir returns the directory argument, falling back to an
// interactive prompt when stdin is a terminal.
func resolveSourceDir(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return filepath.Abs(args[0])
	}

	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok && !isatty.IsTerminal(file.Fd()) {
		return "", errors.New("source directory required (pass it as an argument)")
	}

	fmt.Fprint(cmd.OutOrStdout(), "Enter the directory path to organize: ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read directory path: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no directory path entered")
	}
	return filepath.Abs(path)
}
