package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splice/internal/session"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved merge results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("limit must be positive")
			}
			return ctx.withStore(func(store *session.Store) error {
				results, err := store.History(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(results) == 0 {
					fmt.Fprintln(out, "No merge results saved yet")
					return nil
				}

				columns := []tableColumn{
					{Title: "ID"},
					{Title: "Created"},
					{Title: "Format"},
					{Title: "Files", AlignRight: true},
					{Title: "Segments", AlignRight: true},
					{Title: "Size", AlignRight: true},
				}
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					rows = append(rows, []string{
						shortID(result.ID),
						result.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						string(result.Format),
						strconv.Itoa(result.FileCount),
						strconv.Itoa(result.SegmentCount),
						formatByteSize(len(result.Content)),
					})
				}
				fmt.Fprintln(out, renderTable(columns, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatByteSize(size int) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
