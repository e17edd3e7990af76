package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/category"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the extension-to-category table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := category.Default()

			rows := make([][]string, 0, len(table.Categories())+1)
			for _, cat := range table.Categories() {
				rows = append(rows, []string{
					table.DisplayName(cat.Name),
					strings.Join(cat.Extensions, " "),
				})
			}
			rows = append(rows, []string{table.DisplayName(category.Misc), "(anything unmatched)"})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Category", "Extensions"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
