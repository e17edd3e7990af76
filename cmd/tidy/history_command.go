package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tidy/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past organize runs from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("journal is disabled in configuration")
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if runID != "" {
				return printRunMoves(cmd, store, runID)
			}

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				status := "interrupted"
				if run.Finished {
					status = fmt.Sprintf("%d/%d", run.OrganizedCount, run.TotalCount)
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.SourceDir,
					status,
					shortID(run.ID),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Source", "Processed", "Run"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&runID, "run", "", "Show the individual moves of one run (full or short ID)")
	return cmd
}

func printRunMoves(cmd *cobra.Command, store *journal.Store, runID string) error {
	runs, err := store.RecentRuns(cmd.Context(), 0)
	if err != nil {
		return err
	}
	full := runID
	for _, run := range runs {
		if run.ID == runID || shortID(run.ID) == runID {
			full = run.ID
			break
		}
	}

	moves, err := store.MovesForRun(cmd.Context(), full)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(moves) == 0 {
		fmt.Fprintf(out, "No moves recorded for run %s\n", runID)
		return nil
	}

	rows := make([][]string, 0, len(moves))
	for _, move := range moves {
		rows = append(rows, []string{
			strconv.FormatInt(move.ID, 10),
			move.SourceName,
			move.Category,
			move.Destination,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "File", "Category", "Destination"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
