package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tidy/internal/category"
	"tidy/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report <dir>",
		Short: "Regenerate the summary report from the current organized state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := filepath.Join(source, cfg.Organizer.OrganizedDirName)
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				return fmt.Errorf("no %s directory under %s; run `tidy organize` first", cfg.Organizer.OrganizedDirName, source)
			}

			logger, err := ctx.runLogger()
			if err != nil {
				return err
			}

			table := category.Default()
			path, err := report.Write(root, cfg.Organizer.ReportFilename, table, logger)
			if err != nil {
				return err
			}

			counts, err := report.Collect(root, table)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Render(table, counts))
			fmt.Fprintf(out, "\nWrote %s\n", path)
			return nil
		},
	}
}
